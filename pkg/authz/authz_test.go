package authz

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		actor   *entities.User
		roles   []entities.Role
		wantErr error
	}{
		{"anonymous", nil, AnyRole, domain.ErrNotLoggedIn},
		{"user on any role", &entities.User{Role: entities.RoleUser}, AnyRole, nil},
		{"user on cook route", &entities.User{Role: entities.RoleUser}, CookOrUp, domain.ErrRoleNotAllowed},
		{"cook on cook route", &entities.User{Role: entities.RoleCook}, CookOrUp, nil},
		{"cook on admin route", &entities.User{Role: entities.RoleCook}, AdminsOnly, domain.ErrRoleNotAllowed},
		{"admin on admin route", &entities.User{Role: entities.RoleAdmin}, AdminsOnly, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireRole(tt.actor, tt.roles...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireRoleErrorClasses(t *testing.T) {
	assert.ErrorIs(t, RequireRole(nil, AnyRole...), domain.ErrUnauthenticated)
	assert.ErrorIs(t, RequireRole(&entities.User{Role: entities.RoleUser}, AdminsOnly...), domain.ErrForbidden)
}

func newTestGuard(owners map[uint]uint, calls *int) *Guard {
	guard := NewGuard()
	guard.Register(KindRecipe, func(ctx context.Context, id uint) (uint, error) {
		*calls++
		owner, ok := owners[id]
		if !ok {
			return 0, domain.ErrRecipeNotFound
		}
		return owner, nil
	})
	return guard
}

func TestGuardRequireOwnerOrAdmin(t *testing.T) {
	owners := map[uint]uint{10: 1}
	cook := &entities.User{ID: 1, Role: entities.RoleCook}
	otherCook := &entities.User{ID: 2, Role: entities.RoleCook}
	admin := &entities.User{ID: 3, Role: entities.RoleAdmin}

	tests := []struct {
		name    string
		actor   *entities.User
		id      uint
		wantErr error
	}{
		{"owner", cook, 10, nil},
		{"not owner", otherCook, 10, domain.ErrNotResourceOwner},
		{"admin bypasses ownership", admin, 10, nil},
		{"missing entity for owner", cook, 99, domain.ErrRecipeNotFound},
		{"missing entity for admin", admin, 99, domain.ErrRecipeNotFound},
		{"anonymous", nil, 10, domain.ErrNotLoggedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			guard := newTestGuard(owners, &calls)
			err := guard.RequireOwnerOrAdmin(context.Background(), tt.actor, KindRecipe, tt.id)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGuardAuthorizeChecksRoleBeforeLoading(t *testing.T) {
	calls := 0
	guard := newTestGuard(map[uint]uint{10: 1}, &calls)

	err := guard.Authorize(context.Background(), &entities.User{ID: 1, Role: entities.RoleUser}, CookOrUp, KindRecipe, 10)
	assert.ErrorIs(t, err, domain.ErrRoleNotAllowed)
	assert.Equal(t, 0, calls)

	err = guard.Authorize(context.Background(), &entities.User{ID: 1, Role: entities.RoleCook}, CookOrUp, KindRecipe, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGuardUnregisteredKind(t *testing.T) {
	guard := NewGuard()
	_, err := guard.OwnerOf(context.Background(), KindStep, 1)
	assert.Error(t, err)
	assert.Equal(t, domain.CodeInternal, domain.CodeOf(err))
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, UserFromContext(ctx))

	user := &entities.User{ID: 7}
	assert.Same(t, user, UserFromContext(WithUser(ctx, user)))
	assert.Nil(t, UserFromContext(WithUser(ctx, nil)))
}
