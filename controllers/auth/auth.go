package authController

import (
	"foodapi/config"
	"foodapi/middleware"
	"foodapi/services"
	authValidator "foodapi/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Login exchanges admin credentials for a JWT
func Login(cfg *config.Config, svc *services.AuthService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		user, err := svc.Authenticate(c.UserContext(), reqData.Email, reqData.Password)
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, "failed to login, please retry")
		}

		token, err := middleware.GenerateJWT(cfg, user)
		if err != nil {
			return middleware.ServiceErrorResponse(c, log, err, "failed to login, please retry")
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"statusCode": fiber.StatusOK,
			"error":      nil,
			"message":    "Login successful!",
			"token":      token,
		})
	}
}
