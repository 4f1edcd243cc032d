package authRoutes

import (
	"foodapi/config"
	authController "foodapi/controllers/auth"
	"foodapi/services"
	authValidator "foodapi/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func SetupAuthRoutes(app *fiber.App, cfg *config.Config, svc *services.AuthService, log logrus.FieldLogger) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidator.Login(), authController.Login(cfg, svc, log))
}
