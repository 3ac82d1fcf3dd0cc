package handlers

import (
	"strconv"
	"strings"

	"portfolio/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// queryInt reads an optional integer query parameter, returning def when it
// is absent. An explicit value, zero included, is returned as given.
func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Invalid("%s must be an integer", name)
	}
	return n, nil
}

// paramID reads a positive numeric :id route parameter.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Invalid("Invalid ID %q", c.Params("id"))
	}
	return uint(id), nil
}

// parseBody decodes the JSON request body into out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &apperror.ValidationError{
			Message: "Invalid request body",
			Fields:  map[string]string{"body": err.Error()},
		}
	}
	return nil
}
