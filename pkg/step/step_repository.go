package step

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	StepRepository interface {
		CreateStep(ctx context.Context, step *entities.Step) error
		GetStepByID(ctx context.Context, id uint) (*entities.Step, error)
		GetSteps(ctx context.Context, filter domain.StepFilter) ([]entities.Step, error)
		UpdateStep(ctx context.Context, step *entities.Step) error
		DeleteStep(ctx context.Context, id uint) error
	}

	stepRepository struct {
		db *gorm.DB
	}
)

func NewStepRepository(db *gorm.DB) StepRepository {
	return &stepRepository{db: db}
}

func (r *stepRepository) CreateStep(ctx context.Context, step *entities.Step) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(step).Error
}

func (r *stepRepository) GetStepByID(ctx context.Context, id uint) (*entities.Step, error) {
	var step entities.Step
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("id = ?", id).
		First(&step).Error; err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *stepRepository) GetSteps(ctx context.Context, filter domain.StepFilter) ([]entities.Step, error) {
	query := r.db.WithContext(ctx).Preload("Recipe")
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.RecipeID != nil {
		query = query.Where("recipe_id = ?", *filter.RecipeID)
	}

	var steps []entities.Step
	if err := query.Order("id asc").Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

func (r *stepRepository) UpdateStep(ctx context.Context, step *entities.Step) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(step).Error
}

func (r *stepRepository) DeleteStep(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Step{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
