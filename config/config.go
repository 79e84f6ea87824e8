package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port     string
	Mode     string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AuthConfig 管理後台登入與密碼雜湊設定
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

type AdminConfig struct {
	ChangelistCacheTTL time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Auth:     GetAuthConfig(),
		Admin:    GetAdminConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", Mode: "test", LogLevel: "error"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth: AuthConfig{
			JWTSecret:  "test-secret",
			TokenTTL:   time.Hour,
			BcryptCost: 4,
		},
		Admin: AdminConfig{ChangelistCacheTTL: 30 * time.Second},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnv("APP_PORT", "8080"),
		Mode:     getEnv("GIN_MODE", "release"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetAuthConfig() AuthConfig {
	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		panic(err)
	}

	return AuthConfig{
		JWTSecret:  getEnv("JWT_SECRET", "change-me"),
		TokenTTL:   getDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		BcryptCost: cost,
	}
}

func GetAdminConfig() AdminConfig {
	return AdminConfig{
		ChangelistCacheTTL: getDuration("ADMIN_CACHE_TTL", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}
	return d
}
