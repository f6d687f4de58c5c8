package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// QueryBool reads an optional boolean query parameter. A nil result means
// the parameter was absent or unparsable and the filter should be skipped.
func QueryBool(c *fiber.Ctx, key string) *bool {
	value := c.Query(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &parsed
}

// QueryInt reads an integer query parameter with a fallback.
func QueryInt(c *fiber.Ctx, key string, fallback int) int {
	if parsed, err := strconv.Atoi(c.Query(key)); err == nil {
		return parsed
	}
	return fallback
}
