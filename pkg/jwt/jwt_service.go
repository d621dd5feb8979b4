package jwt

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/internal/utils"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateToken(user *entities.User) (string, error)
		ValidateToken(token string) (*UserClaims, error)
	}

	// UserClaims carries enough of the user to render it without a lookup.
	UserClaims struct {
		ID        uint          `json:"id"`
		Name      string        `json:"name"`
		Email     string        `json:"email"`
		Role      entities.Role `json:"role"`
		CreatedAt time.Time     `json:"createdAt"`
		UpdatedAt time.Time     `json:"updatedAt"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		expiresIn time.Duration
	}
)

const issuer = "RECIPE-SHARING-API"

var ErrMissingSecret = errors.New("jwt: JWT_SECRET is not configured")

func NewJWTService(secretKey string, expiresIn time.Duration) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    issuer,
		expiresIn: expiresIn,
	}
}

// NewJWTServiceFromConfig refuses to start without a secret, an empty HMAC
// key would let anyone mint tokens.
func NewJWTServiceFromConfig() (JWTService, error) {
	secretKey := utils.GetConfig("JWT_SECRET")
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	return NewJWTService(secretKey, utils.GetDurationConfig("JWT_EXPIRES_IN")), nil
}

func (j *jwtService) GenerateToken(user *entities.User) (string, error) {
	if j.secretKey == "" {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := UserClaims{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiresIn)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	if j.secretKey == "" {
		return nil, ErrMissingSecret
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*UserClaims, error) {
	t_Token, err := jwt.ParseWithClaims(token, &UserClaims{}, j.parseToken)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*UserClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
