package shopController

import (
	"foodapi/config"
	"foodapi/middleware"
	"foodapi/services"
	"foodapi/utils"
	commonValidator "foodapi/validators/common"
	shopValidator "foodapi/validators/shop"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func ListShops(svc *services.CatalogService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := listPage(c)
		shops, total, err := svc.ListShops(c.UserContext(), page.Page())
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, "failed to fetch shops, please retry")
		}
		return middleware.ListResponse(c, total, shops)
	}
}

func GetShop(svc *services.CatalogService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shopID, _ := c.Locals("shopId").(uint)
		shop, err := svc.GetShop(c.UserContext(), shopID)
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, "failed to fetch shop, please retry")
		}
		return c.Status(fiber.StatusOK).JSON(shop)
	}
}

// CreateShop is admin only
func CreateShop(svc *services.CatalogService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedShop").(*shopValidator.CreateShopRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		shop, err := svc.CreateShop(c.UserContext(), services.CreateShopInput{
			Name: reqData.Name,
			Type: *reqData.Type,
		})
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, "failed to create shop, please retry")
		}
		return c.Status(fiber.StatusCreated).JSON(shop)
	}
}

func ListDishes(svc *services.CatalogService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shopID, _ := c.Locals("shopId").(uint)
		page := listPage(c)

		dishes, total, err := svc.ListDishes(c.UserContext(), shopID, page.Page())
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, "failed to fetch dishes, please retry")
		}
		return middleware.ListResponse(c, total, dishes)
	}
}

func GetDish(svc *services.CatalogService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dishID, _ := c.Locals("dishId").(uint)
		dish, err := svc.GetDish(c.UserContext(), dishID)
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, "failed to fetch dish, please retry")
		}
		return c.Status(fiber.StatusOK).JSON(dish)
	}
}

// CreateDish is admin only; it also bumps the shop's dishes count
func CreateDish(svc *services.CatalogService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shopID, _ := c.Locals("shopId").(uint)
		reqData, ok := c.Locals("validatedDish").(*shopValidator.CreateDishRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		dish, err := svc.CreateDish(c.UserContext(), shopID, services.CreateDishInput{
			Name:        reqData.Name,
			Price:       *reqData.Price,
			Description: reqData.Description,
			Picture:     reqData.Picture,
		})
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, "failed to create dish, please retry")
		}
		return c.Status(fiber.StatusCreated).JSON(dish)
	}
}

const msgUploadFailed = "failed to upload picture, please retry"

// UploadDishPicture is admin only; it stores the multipart "picture" file and
// points the dish at it
func UploadDishPicture(cfg *config.Config, svc *services.CatalogService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dishID, _ := c.Locals("dishId").(uint)
		if _, err := svc.GetDish(c.UserContext(), dishID); err != nil {
			return middleware.ServiceErrorResponse(c, log, err, msgUploadFailed)
		}

		file, err := c.FormFile("picture")
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "picture file is required!")
		}

		name, err := utils.SavePicture(file, cfg.UploadDir, cfg.MaxUploadSize)
		if utils.IsPictureRejected(err) {
			log.WithError(err).WithField("dish_id", dishID).Warn("picture upload rejected")
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, msgUploadFailed)
		}

		dish, err := svc.SetDishPicture(c.UserContext(), dishID, utils.PictureURL(name))
		if err != nil {
			if rmErr := utils.RemovePicture(cfg.UploadDir, name); rmErr != nil {
				log.WithError(rmErr).WithField("picture", name).Warn("failed to remove orphan picture")
			}
			return middleware.ServiceErrorResponse(c, log, err, msgUploadFailed)
		}
		return c.Status(fiber.StatusOK).JSON(dish)
	}
}

func listPage(c *fiber.Ctx) commonValidator.Pagination {
	if p, ok := c.Locals("validatedList").(*commonValidator.Pagination); ok {
		return *p
	}
	return commonValidator.DefaultPagination()
}
