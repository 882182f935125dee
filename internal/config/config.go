package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UploadsDir         string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	OpenAI    string
	JwtSecret string
}

type AIConfig struct {
	BaseURL           string // OpenAI-compatible API base URL
	EmbeddingModel    string
	GenerationModel   string
	RequestTimeout    time.Duration
	FallbackDimension int // dimensionality of the deterministic fallback embedding
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			UploadsDir:         getEnv("UPLOADS_DIR", "uploads"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "MockInterview"),
		},
		Keys: APIKeys{
			OpenAI:    getEnv("OPENAI_API_KEY", ""),
			JwtSecret: getEnv("JWT_SECRET", "default_secret"),
		},
		Ai: AIConfig{
			BaseURL:           getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			EmbeddingModel:    getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-large"),
			GenerationModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini-2024-07-18"),
			RequestTimeout:    getEnvAsDuration("AI_REQUEST_TIMEOUT", 60*time.Second),
			FallbackDimension: getEnvAsInt("EMBEDDING_FALLBACK_DIMENSION", 1536),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
