package ingredient

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/utils"
	"Recipe-Sharing-API/pkg/authz"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, actor *entities.User, req domain.CreateIngredientRequest) (*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, actor *entities.User, id uint, req domain.UpdateIngredientRequest) (*entities.Ingredient, error)
		DeleteIngredient(ctx context.Context, actor *entities.User, id uint) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		guard                *authz.Guard
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, guard *authz.Guard) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		guard:                guard,
	}
}

// OwnerLookup resolves an ingredient to the owner of its recipe.
func OwnerLookup(ingredientRepository IngredientRepository) authz.OwnerLookup {
	return func(ctx context.Context, id uint) (uint, error) {
		ingredient, err := ingredientRepository.GetIngredientByID(ctx, id)
		if err != nil {
			return 0, notFound(err)
		}
		if ingredient.Recipe == nil {
			return 0, domain.ErrRecipeNotFound
		}
		return ingredient.Recipe.UserID, nil
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrIngredientNotFound
	}
	return err
}

func (s *ingredientService) CreateIngredient(ctx context.Context, actor *entities.User, req domain.CreateIngredientRequest) (*entities.Ingredient, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageIngredientFields)
	}
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindRecipe, req.RecipeID); err != nil {
		return nil, err
	}

	ingredient := &entities.Ingredient{
		Description: req.Description,
		Quantity:    req.Quantity,
		RecipeID:    req.RecipeID,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return s.GetIngredientByID(ctx, ingredient.ID)
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, actor *entities.User, id uint, req domain.UpdateIngredientRequest) (*entities.Ingredient, error) {
	req.Normalize()
	if req.IsEmpty() {
		return nil, domain.InvalidInput(domain.MessageIngredientUpdateFields)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageIngredientFields)
	}
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindIngredient, id); err != nil {
		return nil, err
	}

	ingredient, err := s.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Description != nil {
		ingredient.Description = *req.Description
	}
	if req.Quantity != nil {
		ingredient.Quantity = *req.Quantity
	}
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return s.GetIngredientByID(ctx, id)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, actor *entities.User, id uint) (*entities.Ingredient, error) {
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindIngredient, id); err != nil {
		return nil, err
	}

	ingredient, err := s.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ingredientRepository.DeleteIngredient(ctx, id); err != nil {
		return nil, notFound(err)
	}
	return ingredient, nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]entities.Ingredient, error) {
	return s.ingredientRepository.GetIngredients(ctx, filter)
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return ingredient, nil
}
