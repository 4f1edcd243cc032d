package commentController

import (
	"foodapi/middleware"
	"foodapi/services"
	commentValidator "foodapi/validators/comment"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgSubmitted    = "comment submitted"
	msgSubmitFailed = "failed to submit comment, please retry"
	msgListFailed   = "failed to fetch comments, please retry"
)

// ListComments returns a dish's comments, newest first, with the total in X-Total-Count
func ListComments(svc *services.CommentService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedList").(*commentValidator.ListCommentsQuery)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}

		comments, total, err := svc.ListByDish(c.UserContext(), uint(reqData.DishID), reqData.Page())
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, msgListFailed)
		}
		return middleware.ListResponse(c, total, comments)
	}
}

// CreateComment runs the comment submission workflow
func CreateComment(svc *services.CommentService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedComment").(*commentValidator.CreateCommentRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		in := services.SubmitCommentInput{
			UserID:     uint(*reqData.UserID),
			UserName:   reqData.UserName,
			UserAvatar: reqData.UserAvatar,
			Comment:    reqData.Comment,
			Rate:       *reqData.Rate,
		}
		if reqData.ShopID != nil {
			in.ShopID = uint(*reqData.ShopID)
		}
		if reqData.DishID != nil {
			in.DishID = uint(*reqData.DishID)
		}

		if _, err := svc.Submit(c.UserContext(), in); err != nil {
			return middleware.ServiceErrorResponse(c, log, err, msgSubmitFailed)
		}
		return middleware.MessageResponse(c, fiber.StatusOK, msgSubmitted)
	}
}
