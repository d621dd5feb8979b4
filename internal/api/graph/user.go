package graph

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"

	graphql "github.com/graph-gophers/graphql-go"
)

type (
	UserResolver struct {
		root *Resolver
		user *entities.User
	}

	AuthInfoResolver struct {
		root *Resolver
		info domain.AuthInfo
	}

	newUserInput struct {
		Name     string
		Email    string
		Password string
	}

	loginInput struct {
		Name     *string
		Email    *string
		Password string
	}
)

func (r *Resolver) userResolver(user *entities.User) *UserResolver {
	return &UserResolver{root: r, user: user}
}

func (r *Resolver) userResolvers(users []entities.User) []*UserResolver {
	resolvers := make([]*UserResolver, len(users))
	for i := range users {
		resolvers[i] = r.userResolver(&users[i])
	}
	return resolvers
}

func (u *UserResolver) ID() int32 {
	return int32(u.user.ID)
}

func (u *UserResolver) Name() string {
	return u.user.Name
}

func (u *UserResolver) Email() string {
	return u.user.Email
}

func (u *UserResolver) Role() string {
	return string(u.user.Role)
}

func (u *UserResolver) Recipes(ctx context.Context) ([]*RecipeResolver, error) {
	if u.user.Recipes != nil {
		return u.root.recipeResolvers(u.user.Recipes), nil
	}
	recipes, err := u.root.services.Recipes.GetRecipes(ctx, domain.RecipeFilter{UserID: &u.user.ID})
	if err != nil {
		return nil, u.root.fail(ctx, err)
	}
	return u.root.recipeResolvers(recipes), nil
}

func (u *UserResolver) Reviews(ctx context.Context) ([]*ReviewResolver, error) {
	if u.user.Reviews != nil {
		return u.root.reviewResolvers(u.user.Reviews), nil
	}
	reviews, err := u.root.services.Reviews.GetReviews(ctx, domain.ReviewFilter{UserID: &u.user.ID})
	if err != nil {
		return nil, u.root.fail(ctx, err)
	}
	return u.root.reviewResolvers(reviews), nil
}

func (u *UserResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: u.user.CreatedAt}
}

func (u *UserResolver) UpdatedAt() graphql.Time {
	return graphql.Time{Time: u.user.UpdatedAt}
}

func (a *AuthInfoResolver) User() *UserResolver {
	return a.root.userResolver(a.info.User)
}

func (a *AuthInfoResolver) Token() string {
	return a.info.Token
}

func (r *Resolver) Users(ctx context.Context, args struct{ ID *int32 }) ([]*UserResolver, error) {
	users, err := r.services.Users.GetUsers(ctx, domain.UserFilter{ID: optionalID(args.ID)})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.userResolvers(users), nil
}

// Me returns the caller resolved from the Authorization header, or null.
func (r *Resolver) Me(ctx context.Context) *UserResolver {
	current := actor(ctx)
	if current == nil {
		return nil
	}
	return r.userResolver(current)
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Input newUserInput }) (*AuthInfoResolver, error) {
	info, err := r.services.Users.Register(ctx, domain.RegisterRequest{
		Name:     args.Input.Name,
		Email:    args.Input.Email,
		Password: args.Input.Password,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &AuthInfoResolver{root: r, info: info}, nil
}

func (r *Resolver) LoginUser(ctx context.Context, args struct{ Input loginInput }) (*AuthInfoResolver, error) {
	info, err := r.services.Users.Login(ctx, domain.LoginRequest{
		Name:     args.Input.Name,
		Email:    args.Input.Email,
		Password: args.Input.Password,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &AuthInfoResolver{root: r, info: info}, nil
}

func (r *Resolver) UpdateUserName(ctx context.Context, args struct{ NewName string }) (*UserResolver, error) {
	user, err := r.services.Users.UpdateName(ctx, actor(ctx), domain.UpdateNameRequest{NewName: args.NewName})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.userResolver(user), nil
}

func (r *Resolver) UpdateUserEmail(ctx context.Context, args struct{ NewEmail string }) (*UserResolver, error) {
	user, err := r.services.Users.UpdateEmail(ctx, actor(ctx), domain.UpdateEmailRequest{NewEmail: args.NewEmail})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.userResolver(user), nil
}

func (r *Resolver) UpdateUserPassword(ctx context.Context, args struct {
	Password    string
	NewPassword string
}) (*UserResolver, error) {
	user, err := r.services.Users.UpdatePassword(ctx, actor(ctx), domain.UpdatePasswordRequest{
		Password:    args.Password,
		NewPassword: args.NewPassword,
	})
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.userResolver(user), nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID int32 }) (*UserResolver, error) {
	user, err := r.services.Users.DeleteUser(ctx, actor(ctx), idOf(args.ID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return r.userResolver(user), nil
}
