package step_test

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/testutil"
	"Recipe-Sharing-API/pkg/step"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepLifecycle(t *testing.T) {
	store := testutil.NewStore()
	admin := store.AddUser(t, "Syntyche Joann", "syntyche@gmail.com", "sjoann", entities.RoleAdmin)
	cook := store.AddUser(t, "Ulrik Meginrat", "ulrik@gmail.com", "umeginrat", entities.RoleCook)
	otherCook := store.AddUser(t, "Richard Smith", "richard@gmail.com", "rsmith", entities.RoleCook)
	user := store.AddUser(t, "Taqqiq Berlin", "taqqiq@gmail.com", "tberlin", entities.RoleUser)
	crepes := store.AddRecipe(t, admin.ID, "French Crepes")
	service := step.NewStepService(store, store.Guard())
	ctx := context.Background()

	_, err := service.CreateStep(ctx, cook, domain.CreateStepRequest{RecipeID: crepes.ID, Description: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.CreateStep(ctx, admin, domain.CreateStepRequest{RecipeID: 0, Description: "Flip"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.CreateStep(ctx, user, domain.CreateStepRequest{RecipeID: crepes.ID, Description: "Flip"})
	assert.ErrorIs(t, err, domain.ErrRoleNotAllowed)

	_, err = service.CreateStep(ctx, cook, domain.CreateStepRequest{RecipeID: crepes.ID, Description: "Flip"})
	assert.ErrorIs(t, err, domain.ErrNotResourceOwner, "a cook cannot extend another cook's recipe")

	flip, err := service.CreateStep(ctx, admin, domain.CreateStepRequest{RecipeID: crepes.ID, Description: " Flip "})
	require.NoError(t, err)
	assert.Equal(t, "Flip", flip.Description)
	assert.Equal(t, crepes.ID, flip.RecipeID)

	_, err = service.UpdateStep(ctx, admin, flip.ID, domain.UpdateStepRequest{Description: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.UpdateStep(ctx, otherCook, flip.ID, domain.UpdateStepRequest{Description: "Toss"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = service.UpdateStep(ctx, admin, 999, domain.UpdateStepRequest{Description: "Toss"})
	assert.ErrorIs(t, err, domain.ErrStepNotFound)

	tossed, err := service.UpdateStep(ctx, admin, flip.ID, domain.UpdateStepRequest{Description: "Toss"})
	require.NoError(t, err)
	assert.Equal(t, "Toss", tossed.Description)
	assert.True(t, tossed.UpdatedAt.After(flip.UpdatedAt))

	steps, err := service.GetSteps(ctx, domain.StepFilter{RecipeID: &crepes.ID})
	require.NoError(t, err)
	assert.Len(t, steps, 2)

	_, err = service.DeleteStep(ctx, nil, flip.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	deleted, err := service.DeleteStep(ctx, admin, flip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Toss", deleted.Description)

	byID, err := service.GetSteps(ctx, domain.StepFilter{ID: &flip.ID})
	require.NoError(t, err)
	assert.Empty(t, byID)
}
