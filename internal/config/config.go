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
	Voice    VoiceConfig
	Copilot  CopilotConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	AudioDir           string
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

type VoiceConfig struct {
	APIKey  string
	VoiceID string
	// Delay between consecutive synthesis calls in batch generation.
	RequestDelay time.Duration
}

type CopilotConfig struct {
	// Topic for queued document synthesis jobs.
	SynthesisTopic string
	// Delay before a queued synthesis job runs, mirroring the generation
	// wait the polling UI expects.
	SynthesisDelay time.Duration
	// TTL for abandoned conversations in the in-memory store.
	ConversationTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3002"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3002"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			AudioDir:           getEnv("AUDIO_DIR", "./audio"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Ask April AI"),
		},
		Voice: VoiceConfig{
			APIKey:       getEnv("ELEVENLABS_API_KEY", ""),
			VoiceID:      getEnv("ELEVENLABS_VOICE_ID", ""),
			RequestDelay: getEnvAsDuration("VOICE_REQUEST_DELAY", 2*time.Second),
		},
		Copilot: CopilotConfig{
			SynthesisTopic:  getEnv("COPILOT_SYNTHESIS_TOPIC", "copilot.synthesize_document"),
			SynthesisDelay:  getEnvAsDuration("COPILOT_SYNTHESIS_DELAY", 3*time.Second),
			ConversationTTL: getEnvAsDuration("COPILOT_CONVERSATION_TTL", 24*time.Hour),
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
