package ingredient_test

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/testutil"
	"Recipe-Sharing-API/pkg/ingredient"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int {
	return &n
}

func strPtr(s string) *string {
	return &s
}

func TestIngredientLifecycle(t *testing.T) {
	store := testutil.NewStore()
	admin := store.AddUser(t, "Syntyche Joann", "syntyche@gmail.com", "sjoann", entities.RoleAdmin)
	cook := store.AddUser(t, "Ulrik Meginrat", "ulrik@gmail.com", "umeginrat", entities.RoleCook)
	otherCook := store.AddUser(t, "Richard Smith", "richard@gmail.com", "rsmith", entities.RoleCook)
	user := store.AddUser(t, "Taqqiq Berlin", "taqqiq@gmail.com", "tberlin", entities.RoleUser)
	cake := store.AddRecipe(t, cook.ID, "Chocolate Cake")
	service := ingredient.NewIngredientService(store, store.Guard())
	ctx := context.Background()

	create := func(actor *entities.User, recipeID uint, description string, quantity int) (*entities.Ingredient, error) {
		return service.CreateIngredient(ctx, actor, domain.CreateIngredientRequest{
			RecipeID:    recipeID,
			Description: description,
			Quantity:    quantity,
		})
	}

	t.Run("create is gated", func(t *testing.T) {
		_, err := create(nil, cake.ID, "sugar", 1)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		_, err = create(user, cake.ID, "sugar", 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = create(otherCook, cake.ID, "sugar", 1)
		assert.ErrorIs(t, err, domain.ErrNotResourceOwner)
		_, err = create(cook, 999, "sugar", 1)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("create validates first", func(t *testing.T) {
		_, err := create(nil, cake.ID, "   ", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = create(cook, cake.ID, "sugar", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = create(cook, 0, "sugar", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "a missing parent recipe is an input error")
	})

	var sugar *entities.Ingredient
	t.Run("owner creates", func(t *testing.T) {
		var err error
		sugar, err = create(cook, cake.ID, " 2 cups of sugar ", 2)
		require.NoError(t, err)
		assert.Equal(t, "2 cups of sugar", sugar.Description)
		require.NotNil(t, sugar.Recipe)
		assert.Equal(t, cake.ID, sugar.Recipe.ID)
	})
	require.NotNil(t, sugar)

	t.Run("update", func(t *testing.T) {
		_, err := service.UpdateIngredient(ctx, cook, sugar.ID, domain.UpdateIngredientRequest{Description: strPtr(" ")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = service.UpdateIngredient(ctx, cook, sugar.ID, domain.UpdateIngredientRequest{Quantity: intPtr(-1)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = service.UpdateIngredient(ctx, otherCook, sugar.ID, domain.UpdateIngredientRequest{Quantity: intPtr(3)})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		_, err = service.UpdateIngredient(ctx, cook, 999, domain.UpdateIngredientRequest{Quantity: intPtr(3)})
		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

		updated, err := service.UpdateIngredient(ctx, cook, sugar.ID, domain.UpdateIngredientRequest{Quantity: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Quantity)
		assert.Equal(t, "2 cups of sugar", updated.Description)

		updated, err = service.UpdateIngredient(ctx, admin, sugar.ID, domain.UpdateIngredientRequest{Description: strPtr("brown sugar")})
		require.NoError(t, err)
		assert.Equal(t, "brown sugar", updated.Description)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := service.DeleteIngredient(ctx, otherCook, sugar.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		deleted, err := service.DeleteIngredient(ctx, cook, sugar.ID)
		require.NoError(t, err)
		assert.Equal(t, "brown sugar", deleted.Description)

		_, err = service.DeleteIngredient(ctx, cook, sugar.ID)
		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	})

	t.Run("filters", func(t *testing.T) {
		all, err := service.GetIngredients(ctx, domain.IngredientFilter{RecipeID: &cake.ID})
		require.NoError(t, err)
		require.Len(t, all, 1, "only the fixture ingredient remains")
		assert.Equal(t, "flour", all[0].Description)
	})
}
