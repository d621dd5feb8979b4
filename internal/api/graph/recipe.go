package graph

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"
	"sync"

	graphql "github.com/graph-gophers/graphql-go"
)

type (
	// RecipeResolver serves relations from whatever was preloaded and falls
	// back to a single hydrated reload when a relation is missing. Fields of
	// one object may resolve concurrently, hence the sync.Once.
	RecipeResolver struct {
		root   *Resolver
		recipe *entities.Recipe

		once    sync.Once
		full    *entities.Recipe
		fullErr error
	}

	newRecipeInput struct {
		Name        string
		Description string
		Categories  []int32
		Ingredients []newIngredientInput
		Steps       []string
	}

	updateRecipeInput struct {
		Name        *string
		Description *string
	}
)

func (r *Resolver) recipeResolver(recipe *entities.Recipe) *RecipeResolver {
	return &RecipeResolver{root: r, recipe: recipe}
}

func (r *Resolver) recipeResolvers(recipes []entities.Recipe) []*RecipeResolver {
	resolvers := make([]*RecipeResolver, len(recipes))
	for i := range recipes {
		resolvers[i] = r.recipeResolver(&recipes[i])
	}
	return resolvers
}

func (rr *RecipeResolver) hydrated(ctx context.Context) (*entities.Recipe, error) {
	rr.once.Do(func() {
		rr.full, rr.fullErr = rr.root.services.Recipes.GetRecipeByID(ctx, rr.recipe.ID)
	})
	if rr.fullErr != nil {
		return nil, rr.root.fail(ctx, rr.fullErr)
	}
	return rr.full, nil
}

func (rr *RecipeResolver) ID() int32 {
	return int32(rr.recipe.ID)
}

func (rr *RecipeResolver) Name() string {
	return rr.recipe.Name
}

func (rr *RecipeResolver) Description() string {
	return rr.recipe.Description
}

func (rr *RecipeResolver) ImageURL() *string {
	if rr.recipe.ImageURL == "" {
		return nil
	}
	return &rr.recipe.ImageURL
}

func (rr *RecipeResolver) UserID() int32 {
	return int32(rr.recipe.UserID)
}

func (rr *RecipeResolver) User(ctx context.Context) (*UserResolver, error) {
	if rr.recipe.User != nil {
		return rr.root.userResolver(rr.recipe.User), nil
	}
	user, err := rr.root.services.Users.GetUserByID(ctx, rr.recipe.UserID)
	if err != nil {
		return nil, rr.root.fail(ctx, err)
	}
	return rr.root.userResolver(user), nil
}

func (rr *RecipeResolver) Categories(ctx context.Context) ([]*CategoryResolver, error) {
	links := rr.recipe.Categories
	if links == nil {
		full, err := rr.hydrated(ctx)
		if err != nil {
			return nil, err
		}
		links = full.Categories
	}

	resolvers := make([]*CategoryResolver, 0, len(links))
	for i := range links {
		category := links[i].Category
		if category == nil {
			loaded, err := rr.root.services.Categories.GetCategoryByID(ctx, links[i].CategoryID)
			if err != nil {
				return nil, rr.root.fail(ctx, err)
			}
			category = loaded
		}
		resolvers = append(resolvers, rr.root.categoryResolver(category))
	}
	return resolvers, nil
}

func (rr *RecipeResolver) Ingredients(ctx context.Context) ([]*IngredientResolver, error) {
	ingredients := rr.recipe.Ingredients
	if ingredients == nil {
		full, err := rr.hydrated(ctx)
		if err != nil {
			return nil, err
		}
		ingredients = full.Ingredients
	}
	return rr.root.ingredientResolvers(ingredients), nil
}

func (rr *RecipeResolver) Steps(ctx context.Context) ([]*StepResolver, error) {
	steps := rr.recipe.Steps
	if steps == nil {
		full, err := rr.hydrated(ctx)
		if err != nil {
			return nil, err
		}
		steps = full.Steps
	}
	return rr.root.stepResolvers(steps), nil
}

func (rr *RecipeResolver) Reviews(ctx context.Context) ([]*ReviewResolver, error) {
	reviews := rr.recipe.Reviews
	if reviews == nil {
		full, err := rr.hydrated(ctx)
		if err != nil {
			return nil, err
		}
		reviews = full.Reviews
	}
	return rr.root.reviewResolvers(reviews), nil
}

func (rr *RecipeResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: rr.recipe.CreatedAt}
}

func (rr *RecipeResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: rr.recipe.UpdatedAt}
}

func (r *Resolver) Recipes(ctx context.Context, args struct {
	ID         *int32
	UserID     *int32
	CategoryID *int32
}) ([]*RecipeResolver, error) {
	recipes, err := r.services.Recipes.GetRecipes(ctx, domain.RecipeFilter{
		ID:         optionalID(args.ID),
		UserID:     optionalID(args.UserID),
		CategoryID: optionalID(args.CategoryID),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.recipeResolvers(recipes), nil
}

func (r *Resolver) CreateRecipe(ctx context.Context, args struct{ Input newRecipeInput }) (*RecipeResolver, error) {
	req := domain.CreateRecipeRequest{
		Name:        args.Input.Name,
		Description: args.Input.Description,
	}
	for _, id := range args.Input.Categories {
		req.CategoryIDs = append(req.CategoryIDs, idOf(id))
	}
	for _, ingredient := range args.Input.Ingredients {
		req.Ingredients = append(req.Ingredients, domain.IngredientInput{
			Description: ingredient.Description,
			Quantity:    int(ingredient.Quantity),
		})
	}
	for _, description := range args.Input.Steps {
		req.Steps = append(req.Steps, domain.StepInput{Description: description})
	}

	recipe, err := r.services.Recipes.CreateRecipe(ctx, actor(ctx), req)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.recipeResolver(recipe), nil
}

func (r *Resolver) UpdateRecipe(ctx context.Context, args struct {
	ID      int32
	NewData updateRecipeInput
}) (*RecipeResolver, error) {
	recipe, err := r.services.Recipes.UpdateRecipe(ctx, actor(ctx), idOf(args.ID), domain.UpdateRecipeRequest{
		Name:        args.NewData.Name,
		Description: args.NewData.Description,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.recipeResolver(recipe), nil
}

func (r *Resolver) DeleteRecipe(ctx context.Context, args struct{ ID int32 }) (*RecipeResolver, error) {
	recipe, err := r.services.Recipes.DeleteRecipe(ctx, actor(ctx), idOf(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.recipeResolver(recipe), nil
}
