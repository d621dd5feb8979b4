package step

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
	StepService interface {
		CreateStep(ctx context.Context, actor *entities.User, req domain.CreateStepRequest) (*entities.Step, error)
		UpdateStep(ctx context.Context, actor *entities.User, id uint, req domain.UpdateStepRequest) (*entities.Step, error)
		DeleteStep(ctx context.Context, actor *entities.User, id uint) (*entities.Step, error)
		GetSteps(ctx context.Context, filter domain.StepFilter) ([]entities.Step, error)
		GetStepByID(ctx context.Context, id uint) (*entities.Step, error)
	}

	stepService struct {
		stepRepository StepRepository
		guard          *authz.Guard
	}
)

func NewStepService(stepRepository StepRepository, guard *authz.Guard) StepService {
	return &stepService{
		stepRepository: stepRepository,
		guard:          guard,
	}
}

// OwnerLookup resolves a step to the owner of its recipe.
func OwnerLookup(stepRepository StepRepository) authz.OwnerLookup {
	return func(ctx context.Context, id uint) (uint, error) {
		step, err := stepRepository.GetStepByID(ctx, id)
		if err != nil {
			return 0, notFound(err)
		}
		if step.Recipe == nil {
			return 0, domain.ErrRecipeNotFound
		}
		return step.Recipe.UserID, nil
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrStepNotFound
	}
	return err
}

func (s *stepService) CreateStep(ctx context.Context, actor *entities.User, req domain.CreateStepRequest) (*entities.Step, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageStepDescription)
	}
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindRecipe, req.RecipeID); err != nil {
		return nil, err
	}

	step := &entities.Step{
		Description: req.Description,
		RecipeID:    req.RecipeID,
	}
	if err := s.stepRepository.CreateStep(ctx, step); err != nil {
		return nil, err
	}
	return s.GetStepByID(ctx, step.ID)
}

func (s *stepService) UpdateStep(ctx context.Context, actor *entities.User, id uint, req domain.UpdateStepRequest) (*entities.Step, error) {
	req.Normalize()
	if err := utils.Validate.Struct(req); err != nil {
		return nil, domain.InvalidInput(domain.MessageStepDescription)
	}
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindStep, id); err != nil {
		return nil, err
	}

	step, err := s.GetStepByID(ctx, id)
	if err != nil {
		return nil, err
	}
	step.Description = req.Description
	if err := s.stepRepository.UpdateStep(ctx, step); err != nil {
		return nil, err
	}
	return s.GetStepByID(ctx, id)
}

func (s *stepService) DeleteStep(ctx context.Context, actor *entities.User, id uint) (*entities.Step, error) {
	if err := s.guard.Authorize(ctx, actor, authz.CookOrUp, authz.KindStep, id); err != nil {
		return nil, err
	}

	step, err := s.GetStepByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.stepRepository.DeleteStep(ctx, id); err != nil {
		return nil, notFound(err)
	}
	return step, nil
}

func (s *stepService) GetSteps(ctx context.Context, filter domain.StepFilter) ([]entities.Step, error) {
	return s.stepRepository.GetSteps(ctx, filter)
}

func (s *stepService) GetStepByID(ctx context.Context, id uint) (*entities.Step, error) {
	step, err := s.stepRepository.GetStepByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return step, nil
}
