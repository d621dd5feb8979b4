// Package graph binds the GraphQL schema to the resource services. Every
// resolver reads the caller from the request context and hands it to the
// service, which owns validation and authorization.
package graph

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/pkg/authz"
	"Recipe-Sharing-API/pkg/category"
	"Recipe-Sharing-API/pkg/ingredient"
	"Recipe-Sharing-API/pkg/recipe"
	"Recipe-Sharing-API/pkg/review"
	"Recipe-Sharing-API/pkg/step"
	"Recipe-Sharing-API/pkg/user"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
)

type (
	Services struct {
		Users       user.UserService
		Recipes     recipe.RecipeService
		Ingredients ingredient.IngredientService
		Steps       step.StepService
		Reviews     review.ReviewService
		Categories  category.CategoryService
	}

	Resolver struct {
		services Services
	}

	requestIDKey struct{}
)

func NewResolver(services Services) *Resolver {
	return &Resolver{services: services}
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func actor(ctx context.Context) *entities.User {
	return authz.UserFromContext(ctx)
}

// fail passes domain errors through untouched and hides everything else
// behind domain.ErrInternal after logging it.
func (r *Resolver) fail(ctx context.Context, err error) error {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	log.Errorf("request %s: %v", requestID(ctx), err)
	return domain.ErrInternal
}

// idOf maps a GraphQL Int onto a primary key. Non-positive values become 0,
// which never matches a row.
func idOf(id int32) uint {
	if id <= 0 {
		return 0
	}
	return uint(id)
}

func optionalID(id *int32) *uint {
	if id == nil {
		return nil
	}
	v := idOf(*id)
	return &v
}

func optionalInt(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
