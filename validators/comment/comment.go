package commentValidator

import (
	"foodapi/middleware"
	"foodapi/services"
	commonValidator "foodapi/validators/common"

	"github.com/gofiber/fiber/v2"
)

// CreateCommentRequest is the POST /comments payload. Pointers tell a missing
// field apart from a zero rate.
type CreateCommentRequest struct {
	UserID     *int64   `json:"userId" validate:"required,min=1"`
	UserName   string   `json:"userName" validate:"required"`
	UserAvatar string   `json:"userAvatar" validate:"required"`
	ShopID     *int64   `json:"shopId" validate:"omitempty,min=1"`
	DishID     *int64   `json:"dishId" validate:"omitempty,min=1"`
	Comment    string   `json:"comment" validate:"required"`
	Rate       *float64 `json:"rate" validate:"required,min=0,max=5"`
}

type ListCommentsQuery struct {
	CurrentPage int   `query:"currentPage" validate:"min=1"`
	PageSize    int   `query:"pageSize" validate:"min=1,max=100"`
	DishID      int64 `query:"dishId" validate:"required,min=1"`
}

func (q *ListCommentsQuery) Page() services.Page {
	return services.Page{CurrentPage: q.CurrentPage, PageSize: q.PageSize}
}

// ListComments validates GET /comments query parameters
func ListComments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ListCommentsQuery{CurrentPage: 1, PageSize: services.DefaultPageSize}
		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}

		if errors := commonValidator.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CreateComment validates the comment submission payload
func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCommentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if errors := commonValidator.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}
