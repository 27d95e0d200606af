package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"tribehub/internal/config"
	"tribehub/internal/handler"
	"tribehub/internal/middleware"
	"tribehub/internal/repository"
	"tribehub/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (profile picture upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Put("/me", h.User.UpdateProfile)
	users.Post("/me/profile-picture", h.User.UploadProfilePicture)
	users.Get("/", h.User.List)
	users.Get("/username-suggestions", h.User.SuggestUsernames)
	users.Get("/:id", h.User.Get)

	groups := protected.Group("/groups")
	groups.Post("/", h.Group.Create)
	groups.Get("/", h.Group.List)
	groups.Get("/:groupId", h.Group.Get)
	groups.Put("/:groupId", h.Group.Update)
	groups.Delete("/:groupId", h.Group.Delete)
	groups.Post("/:groupId/join", h.Group.Join)
	groups.Post("/:groupId/invites", h.Group.SendInvite)
	groups.Patch("/:groupId/invites", h.Group.ResolveInvite)

	invitations := protected.Group("/invitations")
	invitations.Get("/", h.Group.ListInvitations)

	groups.Post("/:groupId/discussions", h.Discussion.Create)
	groups.Get("/:groupId/discussions", h.Discussion.ListByGroup)

	discussions := protected.Group("/discussions")
	discussions.Get("/:discussionId", h.Discussion.Get)
	discussions.Post("/:discussionId/comments", h.Discussion.AddComment)
	discussions.Get("/:discussionId/reactions", h.Discussion.GetReactionTotals)

	comments := protected.Group("/comments")
	comments.Post("/:commentId/replies", h.Discussion.AddReply)

	reactions := protected.Group("/reactions")
	reactions.Post("/", h.Discussion.React)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/invites", h.Notification.ListInvites)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Get("/groups/:groupId", h.Notification.ListForGroup)
	notifications.Patch("/groups/:groupId/discussions/:discussionId/read", h.Notification.MarkDiscussionRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
	notifications.Delete("/:id", h.Notification.Delete)
}
