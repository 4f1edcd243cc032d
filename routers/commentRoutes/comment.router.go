package commentRoutes

import (
	commentController "foodapi/controllers/comment"
	"foodapi/services"
	commentValidator "foodapi/validators/comment"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// SetupCommentRoutes registers the public comment endpoints
func SetupCommentRoutes(app *fiber.App, svc *services.CommentService, log logrus.FieldLogger) {
	commentGroup := app.Group("/comments")

	commentGroup.Get("/", commentValidator.ListComments(), commentController.ListComments(svc, log))
	commentGroup.Post("/", commentValidator.CreateComment(), commentController.CreateComment(svc, log))
}
