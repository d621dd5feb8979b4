package testutil

import (
	"Recipe-Sharing-API/pkg/authz"
	"Recipe-Sharing-API/pkg/ingredient"
	"Recipe-Sharing-API/pkg/recipe"
	"Recipe-Sharing-API/pkg/review"
	"Recipe-Sharing-API/pkg/step"
	"Recipe-Sharing-API/pkg/user"
)

// Guard returns an ownership guard wired to the store, registered the same
// way the application registers it.
func (s *Store) Guard() *authz.Guard {
	guard := authz.NewGuard()
	guard.Register(authz.KindUser, user.OwnerLookup(s))
	guard.Register(authz.KindRecipe, recipe.OwnerLookup(s))
	guard.Register(authz.KindIngredient, ingredient.OwnerLookup(s))
	guard.Register(authz.KindStep, step.OwnerLookup(s))
	guard.Register(authz.KindReview, review.OwnerLookup(s))
	return guard
}
