package http

import (
	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/events"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/rpc"
	"taskboard/internal/status"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires repositories, the procedure router and the status
// aggregator into the gin engine.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	verifier := auth.NewJWTVerifier([]byte(cfg.JWTSecret), cfg.TokenTTL)

	router := rpc.NewRouter(
		repository.NewTaskRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewUserRepository(db),
		db,
		verifier,
		cfg.BcryptCost,
	)

	h := handlers.NewHandler(router, status.NewService(router), cfg.DefaultUserID)
	healthHandler := handlers.NewHealthHandler(db, router, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Real-time updates
	r.GET("/ws", events.Handler())

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RequestContext(verifier))
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow)
	v1.POST("/auth/register", authRL, h.Register)
	v1.POST("/auth/login", authRL, h.Login)

	v1.GET("/tasks", h.ListTasks)
	v1.POST("/tasks", h.CreateTask)
	v1.PATCH("/tasks/:id", h.UpdateTask)
	v1.DELETE("/tasks/:id", h.DeleteTask)

	v1.GET("/categories", h.ListCategories)
	v1.POST("/categories", h.CreateCategory)

	// Dashboard aggregation
	v1.GET("/status", h.TasksStatus)
	v1.POST("/status/tasks", h.NewTask)
}
