package graph

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"

	graphql "github.com/graph-gophers/graphql-go"
)

type CategoryResolver struct {
	root     *Resolver
	category *entities.Category
}

func (r *Resolver) categoryResolver(category *entities.Category) *CategoryResolver {
	return &CategoryResolver{root: r, category: category}
}

func (r *Resolver) categoryResolvers(categories []entities.Category) []*CategoryResolver {
	resolvers := make([]*CategoryResolver, len(categories))
	for i := range categories {
		resolvers[i] = r.categoryResolver(&categories[i])
	}
	return resolvers
}

func (cr *CategoryResolver) ID() int32 {
	return int32(cr.category.ID)
}

func (cr *CategoryResolver) Name() string {
	return cr.category.Name
}

func (cr *CategoryResolver) Recipes(ctx context.Context) ([]*RecipeResolver, error) {
	if cr.category.Recipes == nil {
		recipes, err := cr.root.services.Recipes.GetRecipes(ctx, domain.RecipeFilter{CategoryID: &cr.category.ID})
		if err != nil {
			return nil, cr.root.fail(ctx, err)
		}
		return cr.root.recipeResolvers(recipes), nil
	}

	resolvers := make([]*RecipeResolver, 0, len(cr.category.Recipes))
	for _, link := range cr.category.Recipes {
		resolver, err := cr.root.parentRecipe(ctx, link.Recipe, link.RecipeID)
		if err != nil {
			return nil, err
		}
		resolvers = append(resolvers, resolver)
	}
	return resolvers, nil
}

func (cr *CategoryResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: cr.category.CreatedAt}
}

func (cr *CategoryResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: cr.category.UpdatedAt}
}

func (r *Resolver) Categories(ctx context.Context, args struct{ ID *int32 }) ([]*CategoryResolver, error) {
	categories, err := r.services.Categories.GetCategories(ctx, domain.CategoryFilter{ID: optionalID(args.ID)})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.categoryResolvers(categories), nil
}

func (r *Resolver) CreateCategory(ctx context.Context, args struct{ Name string }) (*CategoryResolver, error) {
	category, err := r.services.Categories.CreateCategory(ctx, actor(ctx), domain.CategoryRequest{Name: args.Name})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.categoryResolver(category), nil
}

func (r *Resolver) UpdateCategory(ctx context.Context, args struct {
	ID      int32
	NewName string
}) (*CategoryResolver, error) {
	category, err := r.services.Categories.UpdateCategory(ctx, actor(ctx), idOf(args.ID), domain.CategoryRequest{Name: args.NewName})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.categoryResolver(category), nil
}

func (r *Resolver) DeleteCategory(ctx context.Context, args struct{ ID int32 }) (*CategoryResolver, error) {
	category, err := r.services.Categories.DeleteCategory(ctx, actor(ctx), idOf(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.categoryResolver(category), nil
}
