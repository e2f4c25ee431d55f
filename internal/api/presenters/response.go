package presenters

import (
	"Groeneweide-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

// RuleErrorResponse answers with the status that belongs to err's kind.
func RuleErrorResponse(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusFor(err), message, err)
}

func StatusFor(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrDuplicatePair):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidReference), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNoFieldsProvided), errors.Is(err, domain.ErrNoRowsChanged):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNoDependents):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrHasDependents):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
