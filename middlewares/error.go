package middlewares

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"nouhin-backend/models"
)

// NewErrorHandler centralizes error responses. Domain errors carry their
// own status; everything unknown is a sanitized 500.
func NewErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// 1) Fiber errors (use their status code + message)
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}

		// 2) Domain errors
		var nf *models.NotFoundError
		if errors.As(err, &nf) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": nf.Error(),
				"entity":  nf.Entity,
				"id":      nf.Id,
			})
		}
		var ref *models.ReferenceError
		if errors.As(err, &ref) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": ref.Error(),
				"field":   ref.Field,
				"value":   ref.Value,
			})
		}
		var val *models.ValidationError
		if errors.As(err, &val) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": val.Error(),
				"field":   val.Field,
			})
		}

		// 3) Validator errors (422 + per-field info)
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := make(map[string]string, len(ve))
			for _, fe := range ve {
				out[fe.Field()] = fe.Tag()
			}
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "validation failed",
				"errors":  out,
			})
		}

		// 4) Unknown errors (500)
		log.Error("internal error", zap.Error(err), zap.String("path", c.Path()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "internal server error",
		})
	}
}
