package graph

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"

	graphql "github.com/graph-gophers/graphql-go"
)

type StepResolver struct {
	root *Resolver
	step *entities.Step
}

func (r *Resolver) stepResolver(step *entities.Step) *StepResolver {
	return &StepResolver{root: r, step: step}
}

func (r *Resolver) stepResolvers(steps []entities.Step) []*StepResolver {
	resolvers := make([]*StepResolver, len(steps))
	for i := range steps {
		resolvers[i] = r.stepResolver(&steps[i])
	}
	return resolvers
}

func (sr *StepResolver) ID() int32 {
	return int32(sr.step.ID)
}

func (sr *StepResolver) Description() string {
	return sr.step.Description
}

func (sr *StepResolver) RecipeID() int32 {
	return int32(sr.step.RecipeID)
}

func (sr *StepResolver) Recipe(ctx context.Context) (*RecipeResolver, error) {
	return sr.root.parentRecipe(ctx, sr.step.Recipe, sr.step.RecipeID)
}

func (sr *StepResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: sr.step.CreatedAt}
}

func (sr *StepResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: sr.step.UpdatedAt}
}

func (r *Resolver) Steps(ctx context.Context, args struct {
	ID       *int32
	RecipeID *int32
}) ([]*StepResolver, error) {
	steps, err := r.services.Steps.GetSteps(ctx, domain.StepFilter{
		ID:       optionalID(args.ID),
		RecipeID: optionalID(args.RecipeID),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.stepResolvers(steps), nil
}

func (r *Resolver) CreateStep(ctx context.Context, args struct {
	RecipeID    int32
	Description string
}) (*StepResolver, error) {
	step, err := r.services.Steps.CreateStep(ctx, actor(ctx), domain.CreateStepRequest{
		RecipeID:    idOf(args.RecipeID),
		Description: args.Description,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.stepResolver(step), nil
}

func (r *Resolver) UpdateStep(ctx context.Context, args struct {
	ID             int32
	NewDescription string
}) (*StepResolver, error) {
	step, err := r.services.Steps.UpdateStep(ctx, actor(ctx), idOf(args.ID), domain.UpdateStepRequest{
		Description: args.NewDescription,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.stepResolver(step), nil
}

func (r *Resolver) DeleteStep(ctx context.Context, args struct{ ID int32 }) (*StepResolver, error) {
	step, err := r.services.Steps.DeleteStep(ctx, actor(ctx), idOf(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.stepResolver(step), nil
}
