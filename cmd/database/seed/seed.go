// Package seed loads the demo data set: six users across every role, five
// categories, three recipes and three reviews.
package seed

import (
	"Recipe-Sharing-API/cmd/config"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/utils"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

type (
	seedUser struct {
		name     string
		email    string
		password string
		role     entities.Role
	}

	seedRecipe struct {
		name        string
		description string
		owner       string
		categories  []string
		ingredients []entities.Ingredient
		steps       []string
	}

	seedReview struct {
		title  string
		text   string
		rating int
		recipe string
		author string
	}

	// Fixtures maps the seeded names to their generated ids.
	Fixtures struct {
		Users      map[string]uint
		Categories map[string]uint
		Recipes    map[string]uint
	}
)

var users = []seedUser{
	{"Syntyche Joann", "syntyche@gmail.com", "sjoann", entities.RoleAdmin},
	{"Ulrik Meginrat", "ulrik@gmail.com", "umeginrat", entities.RoleCook},
	{"Taqqiq Berlin", "taqqiq@gmail.com", "tberlin", entities.RoleUser},
	{"Rosalinda Astrid", "rosalinda@gmail.com", "rastrid", entities.RoleUser},
	{"John Astrid", "john@gmail.com", "jastrid", entities.RoleUser},
	{"Richard Smith", "richard@gmail.com", "rsmith", entities.RoleUser},
}

var categories = []string{"French", "Dessert", "Chinese", "Italian", "Spanish"}

var recipes = []seedRecipe{
	{
		name:        "Chocolate Cake",
		description: "A chocolate cake",
		owner:       "ulrik@gmail.com",
		categories:  []string{"Dessert"},
		ingredients: []entities.Ingredient{
			{Description: "200g of chocolate chips", Quantity: 1},
			{Description: "2 cups of sugar", Quantity: 1},
		},
		steps: []string{
			"Preheat the oven to 380° F",
			"Add the chocolate chips and the cups of sugar",
			"Bake for 40 minutes",
		},
	},
	{
		name:        "French Crepes",
		description: "French crepes",
		owner:       "syntyche@gmail.com",
		categories:  []string{"French", "Dessert"},
		ingredients: []entities.Ingredient{
			{Description: "An egg", Quantity: 3},
			{Description: "20g of salt", Quantity: 2},
			{Description: "1/2 cup of milk", Quantity: 1},
		},
		steps: []string{
			"Mix the ingredients together",
			"Let the crepes rest for 20 minutes",
			"Cook the crepes individually",
		},
	},
	{
		name:        "Chicken Stir Fry",
		description: "A chicken stir fry recipe!",
		owner:       "ulrik@gmail.com",
		categories:  []string{"Chinese"},
		ingredients: []entities.Ingredient{
			{Description: "300g of chicken breast", Quantity: 3},
			{Description: "Red chilli", Quantity: 2},
			{Description: "Carrot", Quantity: 4},
		},
		steps: []string{
			"Cut the chicken breast into thin strips",
			"Stir fry briefly, then add the carrots",
			"Add the red chillis",
		},
	},
}

var reviews = []seedReview{
	{"Great chocolate cake recipe!", "Great recipe!", 5, "Chocolate Cake", "syntyche@gmail.com"},
	{"Delicious recipe", "This is a good recipe", 4, "French Crepes", "taqqiq@gmail.com"},
	{"Bad recipe", "This recipe doesn't make any sense", 1, "French Crepes", "ulrik@gmail.com"},
}

// Seed writes the data set through the repositories. Users are keyed by
// email in the returned fixtures, recipes and categories by name.
func Seed(ctx context.Context, repos config.Repositories) (Fixtures, error) {
	fixtures := Fixtures{
		Users:      make(map[string]uint, len(users)),
		Categories: make(map[string]uint, len(categories)),
		Recipes:    make(map[string]uint, len(recipes)),
	}

	for _, u := range users {
		hashed, err := utils.HashPassword(u.password)
		if err != nil {
			return fixtures, err
		}
		user := &entities.User{Name: u.name, Email: u.email, Password: hashed, Role: u.role}
		if err := repos.Users.CreateUser(ctx, user); err != nil {
			return fixtures, fmt.Errorf("seed user %s: %w", u.email, err)
		}
		fixtures.Users[u.email] = user.ID
	}

	for _, name := range categories {
		category := &entities.Category{Name: name}
		if err := repos.Categories.CreateCategory(ctx, category); err != nil {
			return fixtures, fmt.Errorf("seed category %s: %w", name, err)
		}
		fixtures.Categories[name] = category.ID
	}

	for _, r := range recipes {
		recipe := &entities.Recipe{
			Name:        r.name,
			Description: r.description,
			UserID:      fixtures.Users[r.owner],
		}
		for _, name := range r.categories {
			recipe.Categories = append(recipe.Categories, entities.RecipeCategory{CategoryID: fixtures.Categories[name]})
		}
		recipe.Ingredients = append(recipe.Ingredients, r.ingredients...)
		for _, description := range r.steps {
			recipe.Steps = append(recipe.Steps, entities.Step{Description: description})
		}
		if err := repos.Recipes.CreateRecipe(ctx, recipe); err != nil {
			return fixtures, fmt.Errorf("seed recipe %s: %w", r.name, err)
		}
		fixtures.Recipes[r.name] = recipe.ID
	}

	for _, r := range reviews {
		review := &entities.Review{
			Title:    r.title,
			Text:     r.text,
			Rating:   r.rating,
			RecipeID: fixtures.Recipes[r.recipe],
			UserID:   fixtures.Users[r.author],
		}
		if err := repos.Reviews.CreateReview(ctx, review); err != nil {
			return fixtures, fmt.Errorf("seed review %q: %w", r.title, err)
		}
	}

	log.Infof("seeded %d users, %d categories, %d recipes and %d reviews",
		len(users), len(categories), len(recipes), len(reviews))
	return fixtures, nil
}
