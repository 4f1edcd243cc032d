package middleware

import (
	"errors"
	"strconv"

	"foodapi/logger"
	"foodapi/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

const HeaderTotalCount = "X-Total-Count"

// MessageResponse writes {statusCode, error: null, message}.
func MessageResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"statusCode": statusCode,
		"error":      nil,
		"message":    message,
	})
}

// ErrorResponse writes {statusCode, error: <status text>, message}.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"statusCode": statusCode,
		"error":      utils.StatusMessage(statusCode),
		"message":    message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"statusCode": fiber.StatusUnprocessableEntity,
		"error":      utils.StatusMessage(fiber.StatusUnprocessableEntity),
		"message":    "Validation failed!",
		"errors":     fieldErrors,
	})
}

// ListResponse writes one page of rows and the unpaged total in X-Total-Count.
func ListResponse(c *fiber.Ctx, total int64, rows any) error {
	c.Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	return c.Status(fiber.StatusOK).JSON(rows)
}

// ServiceErrorResponse shows rejection messages as they are and replaces
// everything else with internalMessage after logging the cause.
func ServiceErrorResponse(c *fiber.Ctx, log logrus.FieldLogger, err error, internalMessage string) error {
	if services.Public(err) {
		return ErrorResponse(c, statusFor(services.KindOf(err)), err.Error())
	}

	logger.FromContext(c.UserContext(), log).
		WithError(err).
		WithField("path", c.Path()).
		Error(internalMessage)
	return ErrorResponse(c, fiber.StatusInternalServerError, internalMessage)
}

func statusFor(kind services.ErrorKind) int {
	switch kind {
	case services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders errors escaping the handlers in the same shape.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ErrorResponse(c, fe.Code, fe.Message)
		}
		logger.FromContext(c.UserContext(), log).WithError(err).Error("unhandled error")
		return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error, please retry")
	}
}
