package graph

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"

	graphql "github.com/graph-gophers/graphql-go"
)

type (
	ReviewResolver struct {
		root   *Resolver
		review *entities.Review
	}

	newReviewInput struct {
		Title  string
		Text   string
		Rating int32
	}

	updateReviewInput struct {
		Title  *string
		Text   *string
		Rating *int32
	}
)

func (r *Resolver) reviewResolver(review *entities.Review) *ReviewResolver {
	return &ReviewResolver{root: r, review: review}
}

func (r *Resolver) reviewResolvers(reviews []entities.Review) []*ReviewResolver {
	resolvers := make([]*ReviewResolver, len(reviews))
	for i := range reviews {
		resolvers[i] = r.reviewResolver(&reviews[i])
	}
	return resolvers
}

func (rv *ReviewResolver) ID() int32 {
	return int32(rv.review.ID)
}

func (rv *ReviewResolver) Title() string {
	return rv.review.Title
}

func (rv *ReviewResolver) Text() string {
	return rv.review.Text
}

func (rv *ReviewResolver) Rating() int32 {
	return int32(rv.review.Rating)
}

func (rv *ReviewResolver) UserID() int32 {
	return int32(rv.review.UserID)
}

func (rv *ReviewResolver) RecipeID() int32 {
	return int32(rv.review.RecipeID)
}

func (rv *ReviewResolver) User(ctx context.Context) (*UserResolver, error) {
	if rv.review.User != nil {
		return rv.root.userResolver(rv.review.User), nil
	}
	user, err := rv.root.services.Users.GetUserByID(ctx, rv.review.UserID)
	if err != nil {
		return nil, rv.root.fail(ctx, err)
	}
	return rv.root.userResolver(user), nil
}

func (rv *ReviewResolver) Recipe(ctx context.Context) (*RecipeResolver, error) {
	return rv.root.parentRecipe(ctx, rv.review.Recipe, rv.review.RecipeID)
}

func (rv *ReviewResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: rv.review.CreatedAt}
}

func (rv *ReviewResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: rv.review.UpdatedAt}
}

func (r *Resolver) Reviews(ctx context.Context, args struct {
	ID       *int32
	RecipeID *int32
	UserID   *int32
}) ([]*ReviewResolver, error) {
	reviews, err := r.services.Reviews.GetReviews(ctx, domain.ReviewFilter{
		ID:       optionalID(args.ID),
		RecipeID: optionalID(args.RecipeID),
		UserID:   optionalID(args.UserID),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.reviewResolvers(reviews), nil
}

func (r *Resolver) CreateReview(ctx context.Context, args struct {
	RecipeID int32
	Input    newReviewInput
}) (*ReviewResolver, error) {
	review, err := r.services.Reviews.CreateReview(ctx, actor(ctx), domain.CreateReviewRequest{
		RecipeID: idOf(args.RecipeID),
		Title:    args.Input.Title,
		Text:     args.Input.Text,
		Rating:   int(args.Input.Rating),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.reviewResolver(review), nil
}

func (r *Resolver) UpdateReview(ctx context.Context, args struct {
	ID      int32
	NewData updateReviewInput
}) (*ReviewResolver, error) {
	review, err := r.services.Reviews.UpdateReview(ctx, actor(ctx), idOf(args.ID), domain.UpdateReviewRequest{
		Title:  args.NewData.Title,
		Text:   args.NewData.Text,
		Rating: optionalInt(args.NewData.Rating),
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.reviewResolver(review), nil
}

func (r *Resolver) DeleteReview(ctx context.Context, args struct{ ID int32 }) (*ReviewResolver, error) {
	review, err := r.services.Reviews.DeleteReview(ctx, actor(ctx), idOf(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.reviewResolver(review), nil
}
