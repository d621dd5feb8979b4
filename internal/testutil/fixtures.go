package testutil

import (
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/utils"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	utils.PasswordCost = bcrypt.MinCost
}

func (s *Store) AddUser(t testing.TB, name, email, password string, role entities.Role) *entities.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &entities.User{Name: name, Email: email, Password: hashed, Role: role}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func (s *Store) AddCategory(t testing.TB, name string) *entities.Category {
	t.Helper()
	category := &entities.Category{Name: name}
	require.NoError(t, s.CreateCategory(context.Background(), category))
	return category
}

// AddRecipe stores a recipe with one ingredient and one step.
func (s *Store) AddRecipe(t testing.TB, ownerID uint, name string, categoryIDs ...uint) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		Name:        name,
		Description: name + " description",
		UserID:      ownerID,
		Ingredients: []entities.Ingredient{{Description: "flour", Quantity: 1}},
		Steps:       []entities.Step{{Description: "mix"}},
	}
	for _, id := range categoryIDs {
		recipe.Categories = append(recipe.Categories, entities.RecipeCategory{CategoryID: id})
	}
	require.NoError(t, s.CreateRecipe(context.Background(), recipe))
	return recipe
}

func (s *Store) AddReview(t testing.TB, userID, recipeID uint, rating int) *entities.Review {
	t.Helper()
	review := &entities.Review{
		Title:    "review",
		Text:     "some text",
		Rating:   rating,
		UserID:   userID,
		RecipeID: recipeID,
	}
	require.NoError(t, s.CreateReview(context.Background(), review))
	return review
}
