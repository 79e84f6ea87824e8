package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go-gin-seat-booking/config"
	"go-gin-seat-booking/internal/admin"
	"go-gin-seat-booking/internal/auth"
	"go-gin-seat-booking/internal/cache"
	"go-gin-seat-booking/internal/database"
	"go-gin-seat-booking/internal/model"
	"go-gin-seat-booking/internal/repository"
	"go-gin-seat-booking/internal/service"
	"go-gin-seat-booking/pkg/logger"

	"go.uber.org/zap"
)

// createsuperuser 建立可登入管理後台的超級使用者
//
//	createsuperuser -email admin@example.com
//
// 密碼取自 -password，未指定時讀取 SUPERUSER_PASSWORD。
func main() {
	defer logger.Sync()
	log := logger.WithComponent("createsuperuser")

	// 先載入 .env，讓 SUPERUSER_* 也能從檔案取得
	cfg := config.LoadConfig()

	email := flag.String("email", os.Getenv("SUPERUSER_EMAIL"), "superuser email")
	password := flag.String("password", os.Getenv("SUPERUSER_PASSWORD"), "superuser password")
	flag.Parse()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// 執行中的 server 快取了使用者列表，需一併清除
	changelists := cache.NewNoopChangelistCache()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, user changelist cache not invalidated", zap.Error(err))
	} else {
		defer rdb.Close()
		changelists = cache.NewRedisChangelistCache(rdb, cfg.Admin.ChangelistCacheTTL)
	}

	manager := service.NewUserManager(
		repository.NewUserRepository(pool),
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
	)

	user, err := run(ctx, manager, changelists, *email, *password)
	if err != nil {
		log.Fatal("Failed to create superuser", zap.Error(err))
	}

	log.Info("Superuser created", zap.Int("user_id", user.ID), zap.String("email", user.Email))
}

// run 建立超級使用者並清除使用者列表快取；快取清除失敗只記錄警告
func run(ctx context.Context, manager service.UserManager, changelists cache.ChangelistCache, email, password string) (*model.User, error) {
	user, err := manager.CreateSuperuser(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := changelists.Invalidate(ctx, admin.ModelUser); err != nil {
		logger.WithComponent("createsuperuser").Warn("changelist cache invalidate failed", zap.Error(err))
	}
	return user, nil
}
