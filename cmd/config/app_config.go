package config

import (
	"Recipe-Sharing-API/internal/api/graph"
	"Recipe-Sharing-API/internal/api/handlers"
	"Recipe-Sharing-API/internal/api/routes"
	"Recipe-Sharing-API/internal/middleware"
	"Recipe-Sharing-API/internal/utils"
	"Recipe-Sharing-API/internal/utils/mailing"
	"Recipe-Sharing-API/internal/utils/storage"
	"Recipe-Sharing-API/pkg/authz"
	"Recipe-Sharing-API/pkg/category"
	"Recipe-Sharing-API/pkg/ingredient"
	"Recipe-Sharing-API/pkg/jwt"
	"Recipe-Sharing-API/pkg/recipe"
	"Recipe-Sharing-API/pkg/review"
	"Recipe-Sharing-API/pkg/step"
	"Recipe-Sharing-API/pkg/user"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	Repositories struct {
		Users       user.UserRepository
		Recipes     recipe.RecipeRepository
		Ingredients ingredient.IngredientRepository
		Steps       step.StepRepository
		Reviews     review.ReviewRepository
		Categories  category.CategoryRepository
	}

	// Dependencies are the collaborators that differ between a deployed
	// process and a test. Mailer and Storage may be nil.
	Dependencies struct {
		JWTService jwt.JWTService
		Mailer     mailing.Mailer
		Storage    storage.AwsS3
		AccessLog  io.Writer
		Middleware middleware.Config
	}
)

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:       user.NewUserRepository(db),
		Recipes:     recipe.NewRecipeRepository(db),
		Ingredients: ingredient.NewIngredientRepository(db),
		Steps:       step.NewStepRepository(db),
		Reviews:     review.NewReviewRepository(db),
		Categories:  category.NewCategoryRepository(db),
	}
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	jwtService, err := jwt.NewJWTServiceFromConfig()
	if err != nil {
		return nil, err
	}
	bucket, err := storage.NewAwsS3()
	if err != nil {
		return nil, err
	}

	// setting up logging
	err = os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}

	deps := Dependencies{
		JWTService: jwtService,
		Mailer:     mailing.NewMailer(mailing.LoadMailConfig()),
		Storage:    bucket,
		AccessLog:  io.MultiWriter(os.Stdout, file),
		Middleware: middleware.Config{
			FrontendURL:     utils.GetConfig("FRONTEND_URL"),
			RateLimitMax:    utils.GetIntConfig("RATE_LIMIT_MAX"),
			RateLimitWindow: utils.GetDurationConfig("RATE_LIMIT_WINDOW"),
		},
	}
	if deps.Mailer == nil {
		log.Warn("SMTP is not configured, welcome mails are disabled")
	}
	if deps.Storage == nil {
		log.Warn("AWS S3 is not configured, recipe image upload is disabled")
	}

	return BuildApp(NewRepositories(db), deps), nil
}

// BuildApp wires services, resolvers and routes on top of the given
// repositories.
func BuildApp(repos Repositories, deps Dependencies) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "Recipe-Sharing-API",
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if deps.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
			Output:     deps.AccessLog,
		}))
	}

	// ownership lookups
	guard := authz.NewGuard()
	guard.Register(authz.KindUser, user.OwnerLookup(repos.Users))
	guard.Register(authz.KindRecipe, recipe.OwnerLookup(repos.Recipes))
	guard.Register(authz.KindIngredient, ingredient.OwnerLookup(repos.Ingredients))
	guard.Register(authz.KindStep, step.OwnerLookup(repos.Steps))
	guard.Register(authz.KindReview, review.OwnerLookup(repos.Reviews))

	// Service
	userService := user.NewUserService(repos.Users, deps.JWTService, guard, deps.Mailer)
	recipeService := recipe.NewRecipeService(repos.Recipes, repos.Categories, guard, deps.Storage)
	ingredientService := ingredient.NewIngredientService(repos.Ingredients, guard)
	stepService := step.NewStepService(repos.Steps, guard)
	reviewService := review.NewReviewService(repos.Reviews, guard)
	categoryService := category.NewCategoryService(repos.Categories)

	// Handler
	resolver := graph.NewResolver(graph.Services{
		Users:       userService,
		Recipes:     recipeService,
		Ingredients: ingredientService,
		Steps:       stepService,
		Reviews:     reviewService,
		Categories:  categoryService,
	})
	graphHandler := graph.NewHandler(graph.NewSchema(resolver))
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	middlewares := middleware.NewMiddleware(
		middleware.NewIdentityResolver(deps.JWTService, repos.Users),
		deps.Middleware,
	)

	// routes
	routesConfig := routes.Config{
		App:           app,
		GraphHandler:  graphHandler,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app
}
