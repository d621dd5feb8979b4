package review

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ReviewRepository interface {
		// CreateReview returns domain.ErrDuplicateReview when the user already
		// reviewed the recipe.
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewByID(ctx context.Context, id uint) (*entities.Review, error)
		GetReviews(ctx context.Context, filter domain.ReviewFilter) ([]entities.Review, error)
		UpdateReview(ctx context.Context, review *entities.Review) error
		DeleteReview(ctx context.Context, id uint) error
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview checks for an existing review and inserts inside one
// transaction; the unique index on (user_id, recipe_id) catches the rest.
func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Review{}).
			Where("user_id = ? AND recipe_id = ?", review.UserID, review.RecipeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateReview
		}
		return tx.Omit(clause.Associations).Create(review).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateReview
	}
	return err
}

func (r *reviewRepository) hydrated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Recipe")
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id uint) (*entities.Review, error) {
	var review entities.Review
	if err := r.hydrated(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetReviews(ctx context.Context, filter domain.ReviewFilter) ([]entities.Review, error) {
	query := r.hydrated(ctx)
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.RecipeID != nil {
		query = query.Where("recipe_id = ?", *filter.RecipeID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var reviews []entities.Review
	if err := query.Order("id asc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(review).Error
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
