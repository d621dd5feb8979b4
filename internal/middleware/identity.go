package middleware

import (
	"Recipe-Sharing-API/entities"
	"Recipe-Sharing-API/pkg/jwt"
	"Recipe-Sharing-API/pkg/user"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

// IdentityResolver turns the raw Authorization header into the calling user.
// It never fails: every problem downgrades the request to anonymous.
type IdentityResolver struct {
	jwtService     jwt.JWTService
	userRepository user.UserRepository
}

func NewIdentityResolver(jwtService jwt.JWTService, userRepository user.UserRepository) *IdentityResolver {
	return &IdentityResolver{
		jwtService:     jwtService,
		userRepository: userRepository,
	}
}

func (r *IdentityResolver) Resolve(ctx context.Context, header string) *entities.User {
	token := strings.TrimSpace(header)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return nil
	}

	claims, err := r.jwtService.ValidateToken(token)
	if err != nil {
		log.Debugf("discarding token: %v", err)
		return nil
	}

	current, err := r.userRepository.GetUserByID(ctx, claims.ID)
	if err != nil {
		log.Debugf("token subject %d could not be loaded: %v", claims.ID, err)
		return nil
	}
	return current
}
