package review

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
	ReviewService interface {
		CreateReview(ctx context.Context, actor *entities.User, req domain.CreateReviewRequest) (*entities.Review, error)
		UpdateReview(ctx context.Context, actor *entities.User, id uint, req domain.UpdateReviewRequest) (*entities.Review, error)
		DeleteReview(ctx context.Context, actor *entities.User, id uint) (*entities.Review, error)
		GetReviews(ctx context.Context, filter domain.ReviewFilter) ([]entities.Review, error)
		GetReviewByID(ctx context.Context, id uint) (*entities.Review, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		guard            *authz.Guard
	}
)

func NewReviewService(reviewRepository ReviewRepository, guard *authz.Guard) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		guard:            guard,
	}
}

// OwnerLookup resolves a review to its author.
func OwnerLookup(reviewRepository ReviewRepository) authz.OwnerLookup {
	return func(ctx context.Context, id uint) (uint, error) {
		review, err := reviewRepository.GetReviewByID(ctx, id)
		if err != nil {
			return 0, notFound(err)
		}
		return review.UserID, nil
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrReviewNotFound
	}
	return err
}

func (s *reviewService) CreateReview(ctx context.Context, actor *entities.User, req domain.CreateReviewRequest) (*entities.Review, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageReviewFields)
	}
	if err := authz.RequireRole(actor, authz.AnyRole...); err != nil {
		return nil, err
	}
	// Reviewing is open to every role, the lookup only proves the recipe exists.
	if _, err := s.guard.OwnerOf(ctx, authz.KindRecipe, req.RecipeID); err != nil {
		return nil, err
	}

	review := &entities.Review{
		Title:    req.Title,
		Text:     req.Text,
		Rating:   req.Rating,
		UserID:   actor.ID,
		RecipeID: req.RecipeID,
	}
	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	return s.GetReviewByID(ctx, review.ID)
}

func (s *reviewService) UpdateReview(ctx context.Context, actor *entities.User, id uint, req domain.UpdateReviewRequest) (*entities.Review, error) {
	req.Normalize()
	if req.IsEmpty() {
		return nil, domain.InvalidInput(domain.MessageReviewUpdateFields)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageReviewRating)
	}
	if err := s.guard.Authorize(ctx, actor, authz.AnyRole, authz.KindReview, id); err != nil {
		return nil, err
	}

	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if err := s.reviewRepository.UpdateReview(ctx, review); err != nil {
		return nil, err
	}
	return s.GetReviewByID(ctx, id)
}

func (s *reviewService) DeleteReview(ctx context.Context, actor *entities.User, id uint) (*entities.Review, error) {
	if err := s.guard.Authorize(ctx, actor, authz.AnyRole, authz.KindReview, id); err != nil {
		return nil, err
	}

	review, err := s.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepository.DeleteReview(ctx, id); err != nil {
		return nil, notFound(err)
	}
	return review, nil
}

func (s *reviewService) GetReviews(ctx context.Context, filter domain.ReviewFilter) ([]entities.Review, error) {
	return s.reviewRepository.GetReviews(ctx, filter)
}

func (s *reviewService) GetReviewByID(ctx context.Context, id uint) (*entities.Review, error) {
	review, err := s.reviewRepository.GetReviewByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return review, nil
}
