package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ==================== 配置 ====================

// Config 应用配置，全部来自环境变量（支持 .env 文件）
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

// ServerConfig 服务配置
type ServerConfig struct {
	Port string
	// StorageBackend 存储后端选择: memory | postgres
	StorageBackend string
	// SeedDemoData 内存后端启动时是否写入演示数据
	SeedDemoData bool
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// JWTConfig 鉴权配置
type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
}

// Load 加载配置，.env 文件不存在时静默忽略
func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
			SeedDemoData:   getEnvBool("SEED_DEMO_DATA", true),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DATABASE_URL", "host=localhost user=emperor password=emperor dbname=emperor_bespoke port=5432 sslmode=disable"),
			MaxIdleConns:    getEnvInt("DATABASE_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvInt("DATABASE_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvDuration("DATABASE_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET", "emperor-bespoke-secret-change-in-production"),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TTL", 2*time.Hour),
			Issuer:         getEnv("JWT_ISSUER", "emperor-bespoke"),
		},
	}
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
