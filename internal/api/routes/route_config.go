package routes

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/internal/api/graph"
	"Recipe-Sharing-API/internal/api/handlers"
	"Recipe-Sharing-API/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	GraphHandler  graph.Handler
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.SecurityHeaders())
	c.App.Use(c.Middleware.RateLimiter())
	c.App.Use(c.Middleware.IdentityMiddleware())
	c.GuestRoute()
	c.Graph()
	c.Recipes()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
}

func (c *Config) Graph() {
	c.App.Post("/graphql", c.GraphHandler.Serve)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.RequireIdentity())
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}
