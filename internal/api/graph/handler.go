package graph

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	graphql "github.com/graph-gophers/graphql-go"
)

type (
	Handler interface {
		Serve(c *fiber.Ctx) error
	}

	request struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	handler struct {
		schema *graphql.Schema
	}
)

func NewHandler(schema *graphql.Schema) Handler {
	return &handler{schema: schema}
}

// Serve executes one GraphQL request. Domain failures travel inside the
// response's errors array with a 200 status.
func (h *handler) Serve(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.InvalidInput(err.Error()))
	}
	if req.Query == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.InvalidInput("query is required"))
	}

	ctx := c.UserContext()
	if id, ok := c.Locals("requestid").(string); ok {
		ctx = withRequestID(ctx, id)
	}

	res := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	return c.Status(fiber.StatusOK).JSON(res)
}
