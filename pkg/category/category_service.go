package category

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
	CategoryService interface {
		CreateCategory(ctx context.Context, actor *entities.User, req domain.CategoryRequest) (*entities.Category, error)
		UpdateCategory(ctx context.Context, actor *entities.User, id uint, req domain.CategoryRequest) (*entities.Category, error)
		DeleteCategory(ctx context.Context, actor *entities.User, id uint) (*entities.Category, error)
		GetCategories(ctx context.Context, filter domain.CategoryFilter) ([]entities.Category, error)
		GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCategoryNotFound
	}
	return err
}

func (s *categoryService) CreateCategory(ctx context.Context, actor *entities.User, req domain.CategoryRequest) (*entities.Category, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageCategoryName)
	}
	if err := authz.RequireRole(actor, authz.AdminsOnly...); err != nil {
		return nil, err
	}

	category := &entities.Category{Name: req.Name}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return s.GetCategoryByID(ctx, category.ID)
}

func (s *categoryService) UpdateCategory(ctx context.Context, actor *entities.User, id uint, req domain.CategoryRequest) (*entities.Category, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageCategoryUpdateName)
	}
	if err := authz.RequireRole(actor, authz.AdminsOnly...); err != nil {
		return nil, err
	}

	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = req.Name
	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return s.GetCategoryByID(ctx, id)
}

func (s *categoryService) DeleteCategory(ctx context.Context, actor *entities.User, id uint) (*entities.Category, error) {
	if err := authz.RequireRole(actor, authz.AdminsOnly...); err != nil {
		return nil, err
	}

	category, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepository.DeleteCategory(ctx, id); err != nil {
		return nil, notFound(err)
	}
	return category, nil
}

func (s *categoryService) GetCategories(ctx context.Context, filter domain.CategoryFilter) ([]entities.Category, error) {
	return s.categoryRepository.GetCategories(ctx, filter)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return category, nil
}
