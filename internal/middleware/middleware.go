package middleware

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/internal/api/presenters"
	"Recipe-Sharing-API/pkg/authz"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SecurityHeaders() fiber.Handler
		RateLimiter() fiber.Handler
		IdentityMiddleware() fiber.Handler
		RequireIdentity() fiber.Handler
	}

	Config struct {
		FrontendURL     string
		RateLimitMax    int
		RateLimitWindow time.Duration
	}

	middleware struct {
		identity *IdentityResolver
		config   Config
	}
)

func NewMiddleware(identity *IdentityResolver, config Config) Middleware {
	return &middleware{
		identity: identity,
		config:   config,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.config.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	})
}

func (m *middleware) SecurityHeaders() fiber.Handler {
	return helmet.New(helmet.Config{
		// the GraphQL playground served by browsers needs inline scripts
		ContentSecurityPolicy: "",
	})
}

func (m *middleware) RateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        m.config.RateLimitMax,
		Expiration: m.config.RateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "too many requests, please try again later",
			})
		},
	})
}

// IdentityMiddleware attaches the resolved user (or nil) to the request's
// user context. It never rejects a request.
func (m *middleware) IdentityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		current := m.identity.Resolve(ctx, c.Get(fiber.HeaderAuthorization))
		c.SetUserContext(authz.WithUser(ctx, current))
		return c.Next()
	}
}

// RequireIdentity rejects anonymous callers on REST routes.
func (m *middleware) RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authz.UserFromContext(c.UserContext()) == nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedProcessRequest, domain.ErrNotLoggedIn)
		}
		return c.Next()
	}
}
