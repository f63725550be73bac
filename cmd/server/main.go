package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/workflowhq/workflow-api/internal/config"
	"github.com/workflowhq/workflow-api/internal/constants"
	"github.com/workflowhq/workflow-api/internal/handlers"
	"github.com/workflowhq/workflow-api/internal/middleware"
	"github.com/workflowhq/workflow-api/internal/services"
	"github.com/workflowhq/workflow-api/internal/storage"
	"github.com/workflowhq/workflow-api/internal/storage/gormstore"
	"github.com/workflowhq/workflow-api/internal/storage/memstore"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Select the storage backend once at startup; the instance is injected
	// into everything that needs it.
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize services
	authService := services.NewAuthService(store)
	dashboardService := services.NewDashboardService(store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, store)
	workspaceHandler := handlers.NewWorkspaceHandler(store)
	taskHandler := handlers.NewTaskHandler(store)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.Metrics())

	// Session middleware
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"backend": cfg.StorageBackend,
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Everything else requires a session
		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			protected.GET("/me", authHandler.Me)

			workspaces := protected.Group("/workspaces")
			{
				workspaces.GET("", workspaceHandler.ListWorkspaces)
				workspaces.POST("", workspaceHandler.CreateWorkspace)
				workspaces.GET("/:id", workspaceHandler.GetWorkspace)
				workspaces.PATCH("/:id", workspaceHandler.UpdateWorkspace)
				workspaces.DELETE("/:id", workspaceHandler.DeleteWorkspace)
				workspaces.GET("/:id/tasks", workspaceHandler.ListWorkspaceTasks)
			}

			tasks := protected.Group("/tasks")
			{
				tasks.GET("", taskHandler.ListTasks)
				tasks.POST("", taskHandler.CreateTask)
				tasks.GET("/today", taskHandler.TodayTasks)
				tasks.GET("/upcoming", taskHandler.UpcomingTasks)
				tasks.GET("/:id", taskHandler.GetTask)
				tasks.PATCH("/:id", taskHandler.UpdateTask)
				tasks.DELETE("/:id", taskHandler.DeleteTask)

				tasks.GET("/:id/assignees", taskHandler.ListAssignees)
				tasks.POST("/:id/assignees/:userId", taskHandler.AssignUser)
				tasks.DELETE("/:id/assignees/:userId", taskHandler.UnassignUser)

				tasks.GET("/:id/comments", taskHandler.ListComments)
				tasks.POST("/:id/comments", taskHandler.AddComment)
				tasks.DELETE("/:id/comments/:commentId", taskHandler.DeleteComment)

				tasks.GET("/:id/attachments", taskHandler.ListAttachments)
				tasks.POST("/:id/attachments", taskHandler.AddAttachment)
				tasks.DELETE("/:id/attachments/:attachmentId", taskHandler.DeleteAttachment)

				tasks.GET("/:id/voice-notes", taskHandler.ListVoiceNotes)
				tasks.POST("/:id/voice-notes", taskHandler.AddVoiceNote)
				tasks.DELETE("/:id/voice-notes/:voiceNoteId", taskHandler.DeleteVoiceNote)
			}

			protected.GET("/dashboard/stats", dashboardHandler.Stats)
		}
	}

	// Start server
	log.Printf("Server starting on %s (storage backend: %s)", cfg.ServerAddr, cfg.StorageBackend)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// openStore builds the configured storage backend.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case constants.BackendDatabase:
		store, err := gormstore.Open(cfg.DBDriver, cfg.DSN())
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(); err != nil {
			return nil, err
		}
		return store, nil
	default:
		if cfg.SeedDemoData {
			return memstore.NewSeeded()
		}
		return memstore.New(), nil
	}
}
