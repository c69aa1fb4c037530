package server

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/repforge/repforge/internal/config"
	"github.com/repforge/repforge/internal/handler"
	"github.com/repforge/repforge/internal/middleware"
	"github.com/repforge/repforge/internal/repository"
	"github.com/repforge/repforge/internal/service"
	"github.com/repforge/repforge/internal/telemetry"
	"go.mongodb.org/mongo-driver/mongo"
)

const idempotencyTTL = 10 * time.Minute

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	AuthClient  service.FirebaseAuthClient
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	// Repositories
	userRepo := repository.NewMongoUserRepository(deps.MongoDB)
	workoutRepo := repository.NewMongoWorkoutRepository(deps.MongoDB)
	exerciseRepo := repository.NewMongoExerciseRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)

	// Services
	authService := service.NewAuthService(userRepo, deps.AuthClient, deps.Config.JWT.Secret, deps.Config.JWT.TokenTTL)
	workoutService := service.NewWorkoutService(workoutRepo, cacheRepo)
	leaderboardService := service.NewLeaderboardService(userRepo, workoutRepo, cacheRepo)
	progressService := service.NewProgressService(userRepo, workoutRepo, cacheRepo)
	exerciseService := service.NewExerciseService(exerciseRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	progressHandler := handler.NewProgressHandler(progressService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)
	userHandler := handler.NewUserHandler(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      "RepForge API",
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New())
	app.Use(telemetry.FiberMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID, X-Request-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "repforge",
		})
	})

	v1 := app.Group("/v1")

	// Auth endpoints (public)
	auth := v1.Group("/auth")
	auth.Post("/login", authHandler.LoginOrRegister)

	// Exercise library (public read)
	v1.Get("/exercises", exerciseHandler.ListExercises)

	// Everything below requires a signed token
	authed := v1.Group("", middleware.VerifyRepForgeToken(deps.Config.JWT.Secret))

	workouts := authed.Group("/workouts")
	workouts.Use(middleware.Idempotency(deps.RedisClient, idempotencyTTL))
	workouts.Get("/", workoutHandler.ListWorkouts)
	workouts.Post("/", workoutHandler.CreateWorkout)
	workouts.Delete("/:id", workoutHandler.DeleteWorkout)

	authed.Get("/leaderboard", leaderboardHandler.GetLeaderboard)
	authed.Get("/progress", progressHandler.GetProgress)

	authed.Get("/me", userHandler.GetMe)
	authed.Put("/me", userHandler.UpdateMe)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	log.Printf("Error: %v", err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
