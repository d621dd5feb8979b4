package recipe

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/utils"
	"Recipe-Sharing-API/internal/utils/storage"
	"Recipe-Sharing-API/pkg/authz"
	"Recipe-Sharing-API/pkg/category"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, actor *entities.User, req domain.CreateRecipeRequest) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, actor *entities.User, id uint, req domain.UpdateRecipeRequest) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, actor *entities.User, id uint) (*entities.Recipe, error)
		UploadRecipeImage(ctx context.Context, actor *entities.User, req domain.UploadRecipeImageRequest) (domain.UploadRecipeImageResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		guard              *authz.Guard
		s3                 storage.AwsS3
	}
)

var ErrImageStorageDisabled = errors.New("image storage is not configured")

func NewRecipeService(
	recipeRepository RecipeRepository,
	categoryRepository category.CategoryRepository,
	guard *authz.Guard,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		guard:              guard,
		s3:                 s3,
	}
}

// OwnerLookup resolves a recipe to the user who created it.
func OwnerLookup(recipeRepository RecipeRepository) authz.OwnerLookup {
	return func(ctx context.Context, id uint) (uint, error) {
		recipe, err := recipeRepository.GetRecipeByID(ctx, id)
		if err != nil {
			return 0, notFound(err)
		}
		return recipe.UserID, nil
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecipeNotFound
	}
	return err
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func (s *recipeService) CreateRecipe(ctx context.Context, actor *entities.User, req domain.CreateRecipeRequest) (*entities.Recipe, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		message, ok := domain.RecipeMessages[utils.FailedField(err)]
		if !ok {
			message = domain.MessageRecipeNameDescription
		}
		return nil, domain.InvalidInput(message)
	}
	if err := authz.RequireRole(actor, authz.CookOrUp...); err != nil {
		return nil, err
	}

	categoryIDs := uniqueIDs(req.CategoryIDs)
	count, err := s.categoryRepository.CountCategories(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	if count != int64(len(categoryIDs)) {
		return nil, domain.ErrCategoryNotFound
	}

	recipe := &entities.Recipe{
		Name:        req.Name,
		Description: req.Description,
		UserID:      actor.ID,
	}
	for _, id := range categoryIDs {
		recipe.Categories = append(recipe.Categories, entities.RecipeCategory{CategoryID: id})
	}
	for _, ingredient := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, entities.Ingredient{
			Description: ingredient.Description,
			Quantity:    ingredient.Quantity,
		})
	}
	for _, step := range req.Steps {
		recipe.Steps = append(recipe.Steps, entities.Step{Description: step.Description})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return s.GetRecipeByID(ctx, recipe.ID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, actor *entities.User, id uint, req domain.UpdateRecipeRequest) (*entities.Recipe, error) {
	req.Normalize()
	if req.IsEmpty() {
		return nil, domain.InvalidInput(domain.MessageRecipeUpdateFields)
	}
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindRecipe, id); err != nil {
		return nil, err
	}

	recipe, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return s.GetRecipeByID(ctx, id)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, actor *entities.User, id uint) (*entities.Recipe, error) {
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindRecipe, id); err != nil {
		return nil, err
	}

	recipe, err := s.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		return nil, notFound(err)
	}
	return recipe, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, actor *entities.User, req domain.UploadRecipeImageRequest) (domain.UploadRecipeImageResponse, error) {
	if err := utils.Validate.Struct(req); err != nil {
		if utils.FailedOn(err, "startswith") {
			return domain.UploadRecipeImageResponse{}, domain.InvalidInput(domain.MessageRecipeImageType)
		}
		return domain.UploadRecipeImageResponse{}, domain.InvalidInput(domain.MessageRecipeImageRequired)
	}
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindRecipe, req.RecipeID); err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}
	if s.s3 == nil {
		return domain.UploadRecipeImageResponse{}, ErrImageStorageDisabled
	}

	recipe, err := s.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	imageURL, err := s.s3.UploadFile(ctx, "recipes", req.FileName, req.ContentType, req.Body)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	recipe.ImageURL = imageURL
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	return domain.UploadRecipeImageResponse{
		RecipeID: recipe.ID,
		ImageURL: imageURL,
	}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]entities.Recipe, error) {
	return s.recipeRepository.GetRecipes(ctx, filter)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return recipe, nil
}
