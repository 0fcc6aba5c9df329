package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gamercv/gamercv-api/internal/database"
	"github.com/gamercv/gamercv-api/internal/handlers"
	"github.com/gamercv/gamercv-api/internal/middleware"
	"github.com/gamercv/gamercv-api/pkg/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func APIEndpoints(
	r *gin.Engine,
	db *database.Database,
	rdb *redis.Client,
	jwtMgr *auth.JWTManager,
	limiter *middleware.RateLimiter,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	gameH *handlers.GameHandler,
	statsH *handlers.StatsHandler,
	friendH *handlers.FriendHandler,
) {
	r.Use(cors.New(corsConfig()))

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if err := db.Ping(); err != nil {
			dbStatus = "disconnected"
		}
		redisStatus := "connected"
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			redisStatus = "disconnected"
		}
		status := "healthy"
		if dbStatus != "connected" || redisStatus != "connected" {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"service":  "gamercv-api",
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})

	// Auth endpoints
	authGroup := r.Group("/auth")
	authGroup.Use(limiter.Middleware())
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
		authGroup.POST("/refresh", authH.Refresh)
	}

	// API endpoints, all owner-scoped behind the auth middleware
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtMgr, rdb), limiter.Middleware())
	{
		users := api.Group("/users")
		{
			users.GET("/me", userH.GetMe)
			users.PUT("/me", userH.UpdateMe)
			users.DELETE("/me", userH.DeleteMe)
			users.GET("/me/settings", userH.GetSettings)
			users.PUT("/me/settings", userH.UpdateSettings)
			users.GET("/me/activity", userH.GetActivity)
			users.GET("/me/overview", userH.GetOverview)
			users.GET("/:id", userH.GetUser)
		}

		games := api.Group("/games")
		{
			games.GET("", gameH.ListGames)
			games.POST("", gameH.CreateGame)
			games.GET("/categories", gameH.ListCategories)
			games.GET("/suggestions", gameH.Suggestions)
			games.GET("/:id", gameH.GetGame)
			games.PUT("/:id", gameH.UpdateGame)
			games.DELETE("/:id", gameH.DeleteGame)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/games/:id", statsH.GetGameStats)
			stats.POST("/games/:id/refresh", statsH.RefreshGameStats)
			stats.GET("/profile", statsH.GetProfileStats)
		}

		friends := api.Group("/friends")
		{
			friends.GET("", friendH.ListFriends)
			friends.DELETE("/:id", friendH.RemoveFriend)
			friends.GET("/requests", friendH.ListRequests)
			friends.POST("/requests", friendH.SendRequest)
			friends.POST("/requests/:id/accept", friendH.AcceptRequest)
			friends.POST("/requests/:id/reject", friendH.RejectRequest)
		}
	}
}

func corsConfig() cors.Config {
	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	allowed := strings.Split(origins, ",")
	for i := range allowed {
		allowed[i] = strings.TrimSpace(allowed[i])
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowed
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour
	return config
}
