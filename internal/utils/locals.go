package utils

import (
	"github.com/gofiber/fiber/v3"
)

// GetLocals copies the value stored under name into result when the types
// match and reports whether it did.
func GetLocals[T any](c fiber.Ctx, name string, result *T) bool {
	value, ok := c.Locals(name).(T)
	if !ok {
		return false
	}

	*result = value
	return true
}

func SetLocals(c fiber.Ctx, name string, data any) {
	c.Locals(name, data)
}
