package graph

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"

	graphql "github.com/graph-gophers/graphql-go"
)

type (
	IngredientResolver struct {
		root       *Resolver
		ingredient *entities.Ingredient
	}

	newIngredientInput struct {
		Description string
		Quantity    int32
	}

	updateIngredientInput struct {
		Description *string
		Quantity    *int32
	}
)

func (r *Resolver) ingredientResolver(ingredient *entities.Ingredient) *IngredientResolver {
	return &IngredientResolver{root: r, ingredient: ingredient}
}

func (r *Resolver) ingredientResolvers(ingredients []entities.Ingredient) []*IngredientResolver {
	resolvers := make([]*IngredientResolver, len(ingredients))
	for i := range ingredients {
		resolvers[i] = r.ingredientResolver(&ingredients[i])
	}
	return resolvers
}

func (ir *IngredientResolver) ID() int32 {
	return int32(ir.ingredient.ID)
}

func (ir *IngredientResolver) Description() string {
	return ir.ingredient.Description
}

func (ir *IngredientResolver) Quantity() int32 {
	return int32(ir.ingredient.Quantity)
}

func (ir *IngredientResolver) RecipeID() int32 {
	return int32(ir.ingredient.RecipeID)
}

func (ir *IngredientResolver) Recipe(ctx context.Context) (*RecipeResolver, error) {
	return ir.root.parentRecipe(ctx, ir.ingredient.Recipe, ir.ingredient.RecipeID)
}

func (ir *IngredientResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: ir.ingredient.CreatedAt}
}

func (ir *IngredientResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: ir.ingredient.UpdatedAt}
}

// parentRecipe serves a preloaded parent or loads it by id.
func (r *Resolver) parentRecipe(ctx context.Context, recipe *entities.Recipe, recipeID uint) (*RecipeResolver, error) {
	if recipe != nil {
		return r.recipeResolver(recipe), nil
	}
	loaded, err := r.services.Recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.recipeResolver(loaded), nil
}

func (r *Resolver) Ingredients(ctx context.Context, args struct {
	ID       *int32
	RecipeID *int32
}) ([]*IngredientResolver, error) {
	ingredients, err := r.services.Ingredients.GetIngredients(ctx, domain.IngredientFilter{
		ID:       optionalID(args.ID),
		RecipeID: optionalID(args.RecipeID),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.ingredientResolvers(ingredients), nil
}

func (r *Resolver) CreateIngredient(ctx context.Context, args struct {
	RecipeID int32
	Input    newIngredientInput
}) (*IngredientResolver, error) {
	ingredient, err := r.services.Ingredients.CreateIngredient(ctx, actor(ctx), domain.CreateIngredientRequest{
		RecipeID:    idOf(args.RecipeID),
		Description: args.Input.Description,
		Quantity:    int(args.Input.Quantity),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.ingredientResolver(ingredient), nil
}

func (r *Resolver) UpdateIngredient(ctx context.Context, args struct {
	ID      int32
	NewData updateIngredientInput
}) (*IngredientResolver, error) {
	ingredient, err := r.services.Ingredients.UpdateIngredient(ctx, actor(ctx), idOf(args.ID), domain.UpdateIngredientRequest{
		Description: args.NewData.Description,
		Quantity:    optionalInt(args.NewData.Quantity),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.ingredientResolver(ingredient), nil
}

func (r *Resolver) DeleteIngredient(ctx context.Context, args struct{ ID int32 }) (*IngredientResolver, error) {
	ingredient, err := r.services.Ingredients.DeleteIngredient(ctx, actor(ctx), idOf(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.ingredientResolver(ingredient), nil
}
