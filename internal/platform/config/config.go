package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	ExecutorURL              string
	ExecutorCompileTimeoutMs int
	ExecutorRunTimeoutMs     int
	ExecutorRequestTimeout   time.Duration

	CatalogURL            string
	CatalogRequestTimeout time.Duration

	LeaderboardCacheKey string
	LeaderboardCacheTTL time.Duration
	RankSweepSchedule   string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:    getEnv("API_PORT", "8080"),
		JWTKey:     []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTExp:     time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 720)) * time.Hour,
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "dsaquest_db"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		ExecutorURL:              getEnv("EXECUTOR_URL", "https://emkc.org/api/v2/piston"),
		ExecutorCompileTimeoutMs: getEnvAsInt("EXECUTOR_COMPILE_TIMEOUT_MS", 10000),
		ExecutorRunTimeoutMs:     getEnvAsInt("EXECUTOR_RUN_TIMEOUT_MS", 3000),
		ExecutorRequestTimeout:   time.Duration(getEnvAsInt("EXECUTOR_REQUEST_TIMEOUT_SECONDS", 20)) * time.Second,

		CatalogURL:            getEnv("CATALOG_URL", "https://practiceapi.geeksforgeeks.org/api/vLatest/problems/"),
		CatalogRequestTimeout: time.Duration(getEnvAsInt("CATALOG_REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,

		LeaderboardCacheKey: getEnv("LEADERBOARD_CACHE_KEY", "leaderboard:projection"),
		LeaderboardCacheTTL: time.Duration(getEnvAsInt("LEADERBOARD_CACHE_TTL_SECONDS", 60)) * time.Second,
		RankSweepSchedule:   getEnv("RANK_SWEEP_SCHEDULE", "@every 5m"),
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
