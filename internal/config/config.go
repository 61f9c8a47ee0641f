package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Owner    OwnerConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Ai       AIConfig
	Chambers ChambersConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

// OwnerConfig carries the single fixed account id that scopes every row.
// Every repository query filters on it; there is no other tenant model.
type OwnerConfig struct {
	Id uuid.UUID
}

type AuthConfig struct {
	SessionSecret  string
	PassphraseHash string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	OpenAIKey     string
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string
	OllamaBaseURL string
	SpeechModel   string
}

type ChambersConfig struct {
	Name          string
	Email         string
	PhoneLondon   string
	Address       string
	CounselName   string
	CounselMobile string
}

// Load reads the environment (optionally seeded from .env) and fails when
// the store connection or owner id is missing: those are startup
// requirements, never per-request ones.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	dsn := getEnv("DB_CONNECTION_STRING", "")
	if dsn == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING is required")
	}

	ownerRaw := getEnv("OWNER_ID", "")
	if ownerRaw == "" {
		return nil, fmt.Errorf("OWNER_ID is required")
	}
	ownerId, err := uuid.Parse(ownerRaw)
	if err != nil {
		return nil, fmt.Errorf("OWNER_ID is not a valid uuid: %w", err)
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Connection: dsn,
		},
		Owner: OwnerConfig{
			Id: ownerId,
		},
		Auth: AuthConfig{
			SessionSecret:  getEnv("SESSION_SECRET", ""),
			PassphraseHash: getEnv("PASSPHRASE_HASH", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Chambers Practice"),
		},
		Ai: AIConfig{
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
			LLMModel:      getEnv("LLM_MODEL", "gpt-5-nano"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			SpeechModel:   getEnv("SPEECH_MODEL", "whisper-1"),
		},
		Chambers: ChambersConfig{
			Name:          getEnv("CHAMBERS_NAME", "23ES Chambers"),
			Email:         getEnv("CHAMBERS_EMAIL", "clerks@23es.com"),
			PhoneLondon:   getEnv("CHAMBERS_PHONE_LONDON", "020 7413 0353"),
			Address:       getEnv("CHAMBERS_ADDRESS", ""),
			CounselName:   getEnv("COUNSEL_NAME", ""),
			CounselMobile: getEnv("COUNSEL_MOBILE", ""),
		},
	}, nil
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
