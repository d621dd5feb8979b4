package category

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error)
		GetCategories(ctx context.Context, filter domain.CategoryFilter) ([]entities.Category, error)
		CountCategories(ctx context.Context, ids []uint) (int64, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id uint) error
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrCategoryExists
	}
	return err
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).
		Preload("Recipes.Recipe").
		Where("id = ?", id).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context, filter domain.CategoryFilter) ([]entities.Category, error) {
	query := r.db.WithContext(ctx).Preload("Recipes.Recipe")
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}

	var categories []entities.Category
	if err := query.Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) CountCategories(ctx context.Context, ids []uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrCategoryExists
	}
	return err
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
