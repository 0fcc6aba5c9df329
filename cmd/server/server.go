package server

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gamercv/gamercv-api/internal/database"
	"github.com/gamercv/gamercv-api/internal/handlers"
	"github.com/gamercv/gamercv-api/internal/middleware"
	"github.com/gamercv/gamercv-api/internal/providers"
	"github.com/gamercv/gamercv-api/internal/services"
	"github.com/gamercv/gamercv-api/pkg/auth"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager

	AuthH   *handlers.AuthHandler
	UserH   *handlers.UserHandler
	GameH   *handlers.GameHandler
	StatsH  *handlers.StatsHandler
	FriendH *handlers.FriendHandler
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Info(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		time.Hour,
		7*24*time.Hour,
	)

	registry := providers.NewRegistryFromEnv()

	accountSvc := services.NewAccountService(dbConn, dbConn)
	gameSvc := services.NewGameService(dbConn, dbConn)
	statsSvc := services.NewStatsService(dbConn, registry, dbConn, providerTimeout())
	friendSvc := services.NewFriendService(dbConn, dbConn)

	authH := handlers.NewAuthHandler(accountSvc, jwtMgr, rdb)
	userH := handlers.NewUserHandler(accountSvc, dbConn, statsSvc)
	gameH := handlers.NewGameHandler(gameSvc)
	statsH := handlers.NewStatsHandler(statsSvc)
	friendH := handlers.NewFriendHandler(friendSvc)

	limiter := middleware.NewRateLimiter(rdb, rateLimit(), time.Minute)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log.StandardLogger()))
	APIEndpoints(router, dbConn, rdb, jwtMgr, limiter, authH, userH, gameH, statsH, friendH)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		AuthH:      authH,
		UserH:      userH,
		GameH:      gameH,
		StatsH:     statsH,
		FriendH:    friendH,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}

func providerTimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("STATS_PROVIDER_TIMEOUT"))
	if err != nil || seconds <= 0 {
		seconds = 10
	}
	return time.Duration(seconds) * time.Second
}

func rateLimit() int {
	limit, err := strconv.Atoi(os.Getenv("RATE_LIMIT_PER_MINUTE"))
	if err != nil || limit <= 0 {
		limit = 120
	}
	return limit
}
