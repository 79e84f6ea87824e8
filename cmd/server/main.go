package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-gin-seat-booking/config"
	"go-gin-seat-booking/internal/admin"
	"go-gin-seat-booking/internal/auth"
	"go-gin-seat-booking/internal/cache"
	"go-gin-seat-booking/internal/database"
	"go-gin-seat-booking/internal/handler"
	"go-gin-seat-booking/internal/metrics"
	"go-gin-seat-booking/internal/repository"
	"go-gin-seat-booking/internal/service"
	"go-gin-seat-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := config.LoadConfig()
	if level, err := zapcore.ParseLevel(cfg.Server.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	defer logger.Sync()
	log := logger.WithComponent("server")

	gin.SetMode(cfg.Server.Mode)

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(context.Background(), pool); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Redis 只用於列表快取，連不上時停用快取繼續服務
	changelistCache := cache.NewNoopChangelistCache()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, changelist cache disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		changelistCache = cache.NewRedisChangelistCache(rdb, cfg.Admin.ChangelistCacheTTL)
	}

	userRepo := repository.NewUserRepository(pool)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	userManager := service.NewUserManager(userRepo, hasher)
	userService := service.NewUserService(userRepo, userManager, hasher)

	site := admin.NewSite(changelistCache)
	err = admin.RegisterModels(site, admin.Stores{
		Users:        userService,
		Companies:    repository.NewCompanyRepository(pool),
		Seats:        repository.NewSeatRepository(pool),
		Receptions:   repository.NewReceptionRepository(pool),
		Reservations: repository.NewReservationRepository(pool),
	})
	if err != nil {
		log.Fatal("Failed to register admin models", zap.Error(err))
	}

	issuer := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware())

	handler.NewHealthHandler(pool).RegisterRoutes(router)
	metrics.RegisterRoutes(router)
	handler.NewAuthHandler(userService, issuer).RegisterRoutes(router)
	handler.NewAdminHandler(site).RegisterRoutes(router,
		handler.AdminAuth(issuer, userService),
		handler.RequireSuperuserForWrites(),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
