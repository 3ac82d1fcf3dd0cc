package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"portfolio/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts errors returned by handlers into JSON responses.
// Internal details are only included when development is true.
func ErrorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := apperror.Status(err)
		message := http.StatusText(status)

		var fe *fiber.Error
		var ve *apperror.ValidationError
		switch {
		case errors.As(err, &fe):
			status = fe.Code
			message = fe.Message
		case errors.As(err, &ve):
			message = ve.Message
		case status == http.StatusNotFound:
			message = err.Error()
		}

		attrs := []any{
			"status", status,
			"error", err.Error(),
			"url", c.OriginalURL(),
			"method", c.Method(),
			"ip", c.IP(),
			"user_agent", c.Get(fiber.HeaderUserAgent),
		}
		if status >= http.StatusInternalServerError {
			slog.Error("request failed", attrs...)
		} else {
			slog.Warn("request rejected", attrs...)
		}

		body := fiber.Map{
			"error":     message,
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if ve != nil && len(ve.Fields) > 0 {
			body["errors"] = ve.Fields
		}
		if development {
			body["details"] = err.Error()
		}
		return c.Status(status).JSON(body)
	}
}
