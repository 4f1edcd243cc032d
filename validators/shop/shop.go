package shopValidator

import (
	"foodapi/middleware"
	commonValidator "foodapi/validators/common"

	"github.com/gofiber/fiber/v2"
)

type CreateShopRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Type *int   `json:"type" validate:"required,min=0"`
}

type CreateDishRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Price       *int64 `json:"price" validate:"required,min=0"`
	Description string `json:"description"`
	Picture     string `json:"picture" validate:"omitempty,url,max=512"`
}

type shopParams struct {
	ShopID int64 `params:"shopId" validate:"min=1"`
}

type dishParams struct {
	DishID int64 `params:"dishId" validate:"min=1"`
}

// ListPage validates currentPage/pageSize for the catalogue listings
func ListPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := commonValidator.DefaultPagination()
		if err := c.QueryParser(&reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}

		if errors := commonValidator.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", &reqData)
		return c.Next()
	}
}

// ShopParam validates :shopId and stores it as uint under "shopId"
func ShopParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(shopParams)
		if err := c.ParamsParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid shop id!")
		}
		if errors := commonValidator.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("shopId", uint(reqData.ShopID))
		return c.Next()
	}
}

// DishParam validates :dishId and stores it as uint under "dishId"
func DishParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dishParams)
		if err := c.ParamsParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid dish id!")
		}
		if errors := commonValidator.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("dishId", uint(reqData.DishID))
		return c.Next()
	}
}

func CreateShop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateShopRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := commonValidator.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedShop", reqData)
		return c.Next()
	}
}

func CreateDish() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateDishRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := commonValidator.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDish", reqData)
		return c.Next()
	}
}
