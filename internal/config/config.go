package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	Ingestion IngestionConfig
	Interview InterviewConfig
	Session   SessionConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LLMConfig struct {
	Provider      string
	APIKey        string
	Model         string
	BaseURL       string
	Temperature   float64
	ContextTokens int
}

type IngestionConfig struct {
	MaxFileSize    int64
	MinResumeChars int
}

type InterviewConfig struct {
	CompletionPhrases bool
}

type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	env := getEnv("ENV", "development")
	provider := strings.ToLower(getEnv("LLM_PROVIDER", "groq"))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  env,
		},
		LLM: LLMConfig{
			Provider:      provider,
			APIKey:        apiKeyFor(provider),
			Model:         getEnv("LLM_MODEL", ""),
			BaseURL:       getEnv("LLM_BASE_URL", ""),
			Temperature:   getEnvAsFloat64("LLM_TEMPERATURE", 0.7),
			ContextTokens: getEnvAsInt("LLM_CONTEXT_TOKENS", 8192),
		},
		Ingestion: IngestionConfig{
			MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", 5_000_000),
			MinResumeChars: getEnvAsInt("MIN_RESUME_CHARS", 100),
		},
		Interview: InterviewConfig{
			CompletionPhrases: getEnvAsBool("COMPLETION_PHRASES", true),
		},
		Session: SessionConfig{
			IdleTTL:       getEnvAsDuration("SESSION_IDLE_TTL", "2h"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "5m"),
		},
		Log: LogConfig{
			JSON:  getEnvAsBool("LOG_JSON", false),
			Debug: getEnvAsBool("LOG_DEBUG", env == "development"),
		},
	}
}

// apiKeyFor prefers LLM_API_KEY and falls back to the provider's own variable.
func apiKeyFor(provider string) string {
	if key := getEnv("LLM_API_KEY", ""); key != "" {
		return key
	}
	switch provider {
	case "openai":
		return getEnv("OPENAI_API_KEY", "")
	case "gemini":
		return getEnv("GEMINI_API_KEY", "")
	default:
		return getEnv("GROQ_API_KEY", "")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
