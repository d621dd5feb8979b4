package handlers

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/internal/api/presenters"
	"Recipe-Sharing-API/pkg/authz"
	"Recipe-Sharing-API/pkg/recipe"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	recipeID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || recipeID == 0 {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadRecipeImage, domain.ErrRecipeNotFound)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadRecipeImage, domain.InvalidInput(domain.MessageRecipeImageRequired))
	}
	body, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadRecipeImage, domain.InvalidInput(domain.MessageRecipeImageRequired))
	}
	defer body.Close()

	req := domain.UploadRecipeImageRequest{
		RecipeID:    uint(recipeID),
		FileName:    file.Filename,
		ContentType: file.Header.Get(fiber.HeaderContentType),
		Size:        file.Size,
		Body:        body,
	}

	res, err := h.recipeService.UploadRecipeImage(c.UserContext(), authz.UserFromContext(c.UserContext()), req)
	if err != nil {
		if errors.Is(err, recipe.ErrImageStorageDisabled) {
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedUploadRecipeImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadRecipeImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadRecipeImage)
}
