package user_test

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/testutil"
	"Recipe-Sharing-API/pkg/jwt"
	"Recipe-Sharing-API/pkg/user"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to      string
	subject string
}

type fakeMailer struct {
	sent chan sentMail
}

func (m *fakeMailer) SendMail(to string, subject string, body string) error {
	m.sent <- sentMail{to: to, subject: subject}
	return nil
}

type fixture struct {
	store   *testutil.Store
	tokens  jwt.JWTService
	mailer  *fakeMailer
	service user.UserService
}

func newFixture() *fixture {
	store := testutil.NewStore()
	tokens := jwt.NewJWTService("secret", time.Hour)
	mailer := &fakeMailer{sent: make(chan sentMail, 4)}
	return &fixture{
		store:   store,
		tokens:  tokens,
		mailer:  mailer,
		service: user.NewUserService(store, tokens, store.Guard(), mailer),
	}
}

func strPtr(s string) *string {
	return &s
}

func TestRegister(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	info, err := f.service.Register(ctx, domain.RegisterRequest{
		Name:     "  Rosalinda Astrid ",
		Email:    " rosalinda@gmail.com ",
		Password: "rastrid",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rosalinda Astrid", info.User.Name)
	assert.Equal(t, "rosalinda@gmail.com", info.User.Email)
	assert.Equal(t, entities.RoleUser, info.User.Role)
	assert.NotEqual(t, "rastrid", info.User.Password)

	claims, err := f.tokens.ValidateToken(info.Token)
	require.NoError(t, err)
	assert.Equal(t, info.User.ID, claims.ID)
	assert.Equal(t, entities.RoleUser, claims.Role)

	select {
	case mail := <-f.mailer.sent:
		assert.Equal(t, "rosalinda@gmail.com", mail.to)
	case <-time.After(time.Second):
		t.Fatal("welcome mail was not sent")
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture()
	f.store.AddUser(t, "Taqqiq Berlin", "taqqiq@gmail.com", "tberlin", entities.RoleUser)

	tests := []struct {
		name    string
		req     domain.RegisterRequest
		message string
	}{
		{"blank name", domain.RegisterRequest{Name: "   ", Email: "a@b.co", Password: "x"}, domain.MessageRegisterFieldsRequired},
		{"missing password", domain.RegisterRequest{Name: "A", Email: "a@b.co", Password: " "}, domain.MessageRegisterFieldsRequired},
		{"malformed email", domain.RegisterRequest{Name: "A", Email: "not-an-email", Password: "x"}, domain.MessageInvalidEmail},
		{"email taken", domain.RegisterRequest{Name: "A", Email: "taqqiq@gmail.com", Password: "x"}, domain.ErrEmailTaken.Message},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Register(context.Background(), tt.req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestLogin(t *testing.T) {
	f := newFixture()
	admin := f.store.AddUser(t, "Syntyche Joann", "syntyche@gmail.com", "sjoann", entities.RoleAdmin)
	ctx := context.Background()

	info, err := f.service.Login(ctx, domain.LoginRequest{Email: strPtr("syntyche@gmail.com"), Password: "sjoann"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, info.User.ID)
	claims, err := f.tokens.ValidateToken(info.Token)
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, claims.Role)

	info, err = f.service.Login(ctx, domain.LoginRequest{Name: strPtr(" Syntyche Joann "), Password: "sjoann"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, info.User.ID)

	tests := []struct {
		name    string
		req     domain.LoginRequest
		wantErr error
	}{
		{"no identifier", domain.LoginRequest{Email: strPtr("  "), Password: "sjoann"}, domain.ErrInvalidInput},
		{"no password", domain.LoginRequest{Email: strPtr("syntyche@gmail.com")}, domain.ErrInvalidInput},
		{"unknown user", domain.LoginRequest{Email: strPtr("nobody@gmail.com"), Password: "sjoann"}, domain.ErrUserNotFound},
		{"wrong password", domain.LoginRequest{Email: strPtr("syntyche@gmail.com"), Password: "nope"}, domain.ErrIncorrectPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Login(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateName(t *testing.T) {
	f := newFixture()
	taqqiq := f.store.AddUser(t, "Taqqiq Berlin", "taqqiq@gmail.com", "tberlin", entities.RoleUser)
	ctx := context.Background()

	_, err := f.service.UpdateName(ctx, nil, domain.UpdateNameRequest{NewName: "Someone"})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = f.service.UpdateName(ctx, taqqiq, domain.UpdateNameRequest{NewName: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	updated, err := f.service.UpdateName(ctx, taqqiq, domain.UpdateNameRequest{NewName: " Taqqiq B. "})
	require.NoError(t, err)
	assert.Equal(t, "Taqqiq B.", updated.Name)
	assert.True(t, updated.UpdatedAt.After(taqqiq.UpdatedAt))
}

func TestUpdateEmail(t *testing.T) {
	f := newFixture()
	taqqiq := f.store.AddUser(t, "Taqqiq Berlin", "taqqiq@gmail.com", "tberlin", entities.RoleUser)
	f.store.AddUser(t, "John Astrid", "john@gmail.com", "jastrid", entities.RoleUser)
	ctx := context.Background()

	_, err := f.service.UpdateEmail(ctx, taqqiq, domain.UpdateEmailRequest{NewEmail: "broken"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.service.UpdateEmail(ctx, taqqiq, domain.UpdateEmailRequest{NewEmail: "john@gmail.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	updated, err := f.service.UpdateEmail(ctx, taqqiq, domain.UpdateEmailRequest{NewEmail: "berlin@gmail.com"})
	require.NoError(t, err)
	assert.Equal(t, "berlin@gmail.com", updated.Email)
}

func TestUpdatePassword(t *testing.T) {
	f := newFixture()
	taqqiq := f.store.AddUser(t, "Taqqiq Berlin", "taqqiq@gmail.com", "tberlin", entities.RoleUser)
	ctx := context.Background()

	_, err := f.service.UpdatePassword(ctx, taqqiq, domain.UpdatePasswordRequest{Password: "wrong", NewPassword: "next"})
	assert.ErrorIs(t, err, domain.ErrCurrentPassword)

	_, err = f.service.UpdatePassword(ctx, taqqiq, domain.UpdatePasswordRequest{Password: "tberlin", NewPassword: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.service.UpdatePassword(ctx, taqqiq, domain.UpdatePasswordRequest{Password: "tberlin", NewPassword: "next"})
	require.NoError(t, err)

	_, err = f.service.Login(ctx, domain.LoginRequest{Email: strPtr("taqqiq@gmail.com"), Password: "tberlin"})
	assert.ErrorIs(t, err, domain.ErrIncorrectPassword)
	_, err = f.service.Login(ctx, domain.LoginRequest{Email: strPtr("taqqiq@gmail.com"), Password: "next"})
	assert.NoError(t, err)
}

func TestSelfServiceOnDeletedAccount(t *testing.T) {
	f := newFixture()
	ghost := f.store.AddUser(t, "Ghost", "ghost@gmail.com", "ghost", entities.RoleUser)
	require.NoError(t, f.store.DeleteUser(context.Background(), ghost.ID))

	_, err := f.service.UpdateName(context.Background(), ghost, domain.UpdateNameRequest{NewName: "Boo"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	f := newFixture()
	admin := f.store.AddUser(t, "Syntyche Joann", "syntyche@gmail.com", "sjoann", entities.RoleAdmin)
	cook := f.store.AddUser(t, "Ulrik Meginrat", "ulrik@gmail.com", "umeginrat", entities.RoleCook)
	taqqiq := f.store.AddUser(t, "Taqqiq Berlin", "taqqiq@gmail.com", "tberlin", entities.RoleUser)
	dessert := f.store.AddCategory(t, "Dessert")
	cake := f.store.AddRecipe(t, cook.ID, "Chocolate Cake", dessert.ID)
	ctx := context.Background()

	_, err := f.service.DeleteUser(ctx, nil, cook.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = f.service.DeleteUser(ctx, taqqiq, cook.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.service.DeleteUser(ctx, admin, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	deleted, err := f.service.DeleteUser(ctx, admin, cook.ID)
	require.NoError(t, err)
	assert.Equal(t, cook.ID, deleted.ID)
	require.Len(t, deleted.Recipes, 1)
	assert.Equal(t, cake.ID, deleted.Recipes[0].ID)

	_, err = f.store.GetRecipeByID(ctx, cake.ID)
	assert.Error(t, err, "recipes are removed with their owner")

	self, err := f.service.DeleteUser(ctx, taqqiq, taqqiq.ID)
	require.NoError(t, err)
	assert.Equal(t, taqqiq.ID, self.ID)

	users, err := f.service.GetUsers(ctx, domain.UserFilter{})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, admin.ID, users[0].ID)
}

func TestGetUsersByID(t *testing.T) {
	f := newFixture()
	f.store.AddUser(t, "Syntyche Joann", "syntyche@gmail.com", "sjoann", entities.RoleAdmin)
	cook := f.store.AddUser(t, "Ulrik Meginrat", "ulrik@gmail.com", "umeginrat", entities.RoleCook)

	first, err := f.service.GetUsers(context.Background(), domain.UserFilter{ID: &cook.ID})
	require.NoError(t, err)
	second, err := f.service.GetUsers(context.Background(), domain.UserFilter{ID: &cook.ID})
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Equal(t, cook.ID, first[0].ID)
	assert.Equal(t, first, second)

	missing := uint(404)
	none, err := f.service.GetUsers(context.Background(), domain.UserFilter{ID: &missing})
	require.NoError(t, err)
	assert.Empty(t, none)
}
