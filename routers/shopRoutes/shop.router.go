package shopRoutes

import (
	"foodapi/config"
	shopController "foodapi/controllers/shop"
	"foodapi/services"
	shopValidator "foodapi/validators/shop"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SetupShopRoutes registers shop and dish endpoints. Writes go through adminOnly.
func SetupShopRoutes(app *fiber.App, cfg *config.Config, svc *services.CatalogService, adminOnly fiber.Handler, log logrus.FieldLogger) {
	shopGroup := app.Group("/shops")

	shopGroup.Get("/", shopValidator.ListPage(), shopController.ListShops(svc, log))
	shopGroup.Post("/", adminOnly, shopValidator.CreateShop(), shopController.CreateShop(svc, log))
	shopGroup.Get("/:shopId", shopValidator.ShopParam(), shopController.GetShop(svc, log))
	shopGroup.Get("/:shopId/dishes", shopValidator.ShopParam(), shopValidator.ListPage(), shopController.ListDishes(svc, log))
	shopGroup.Post("/:shopId/dishes", adminOnly, shopValidator.ShopParam(), shopValidator.CreateDish(), shopController.CreateDish(svc, log))

	dishGroup := app.Group("/dishes")
	dishGroup.Get("/:dishId", shopValidator.DishParam(), shopController.GetDish(svc, log))
	dishGroup.Post("/:dishId/picture", adminOnly, shopValidator.DishParam(), shopController.UploadDishPicture(cfg, svc, log))
}
