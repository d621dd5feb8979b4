package presenters

import (
	"Recipe-Sharing-API/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	Response struct {
		Status  bool        `json:"status"`
		Message string      `json:"message"`
		Code    string      `json:"code,omitempty"`
		Error   string      `json:"error,omitempty"`
		Data    interface{} `json:"data,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes a failure body. A domain error overrides statusCode
// with the status that matches its code. Any other error is logged and
// reported as domain.ErrInternal.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		statusCode = StatusOf(domainErr.Code)
		res.Code = string(domainErr.Code)
		res.Error = domainErr.Error()
	} else if err != nil {
		log.Errorf("request %v: %v", c.Locals("requestid"), err)
		res.Code = string(domain.CodeInternal)
		res.Error = domain.ErrInternal.Error()
	}
	return c.Status(statusCode).JSON(res)
}

func StatusOf(code domain.ErrorCode) int {
	switch code {
	case domain.CodeInvalidInput:
		return fiber.StatusBadRequest
	case domain.CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case domain.CodeForbidden:
		return fiber.StatusForbidden
	case domain.CodeNotFound:
		return fiber.StatusNotFound
	case domain.CodeDuplicateReview:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
