package jwt

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/utils"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *entities.User {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &entities.User{
		ID:        42,
		Name:      "Ulrik Meginrat",
		Email:     "ulrik@gmail.com",
		Role:      entities.RoleCook,
		Timestamp: entities.Timestamp{CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService("secret", time.Hour)
	user := testUser()

	token, err := service.GenerateToken(user)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.True(t, user.CreatedAt.Equal(claims.CreatedAt))
	assert.True(t, user.UpdatedAt.Equal(claims.UpdatedAt))
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestValidateTokenFailures(t *testing.T) {
	valid := NewJWTService("secret", time.Hour)
	expired := NewJWTService("secret", -time.Hour)
	forged := NewJWTService("another-secret", time.Hour)

	expiredToken, err := expired.GenerateToken(testUser())
	require.NoError(t, err)
	forgedToken, err := forged.GenerateToken(testUser())
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{ID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"expired", expiredToken, domain.ErrTokenExpired},
		{"wrong secret", forgedToken, domain.ErrTokenInvalid},
		{"unsigned", noneToken, domain.ErrTokenInvalid},
		{"garbage", "not-a-token", domain.ErrTokenMalformed},
		{"empty", "", domain.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := valid.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		})
	}
}

func TestNewJWTServiceFromConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	utils.LoadConfig()

	service, err := NewJWTServiceFromConfig()
	assert.Nil(t, service)
	assert.ErrorIs(t, err, ErrMissingSecret)

	t.Setenv("JWT_SECRET", "configured")
	utils.LoadConfig()

	service, err = NewJWTServiceFromConfig()
	require.NoError(t, err)
	token, err := service.GenerateToken(testUser())
	require.NoError(t, err)
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.ID)
}

func TestEmptySecretNeverValidates(t *testing.T) {
	service := NewJWTService("", time.Hour)

	_, err := service.GenerateToken(testUser())
	assert.ErrorIs(t, err, ErrMissingSecret)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, UserClaims{
		ID:   1,
		Role: entities.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(""))
	require.NoError(t, err)

	claims, err := service.ValidateToken(forged)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
