package handlers

import (
	"Groeneweide-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// paramID reads a positive integer route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

func compositeKey(c *fiber.Ctx, first, second string) (uint, uint, error) {
	a, err := paramID(c, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := paramID(c, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
