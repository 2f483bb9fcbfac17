package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"flowradar/internal/llm"
)

type Config struct {
	Port    string
	Env     string
	LLM     LLMConfig
	Archive ArchiveConfig
}

type LLMConfig struct {
	GeminiAPIKey  string
	GroqAPIKey    string
	DefaultModel  string
	RPS           float64
	Burst         int
	RetryAttempts int
}

type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:    *port,
		Env:     env,
		LLM:     loadLLMConfig(),
		Archive: loadArchiveConfig(),
	}, nil
}

func loadLLMConfig() LLMConfig {
	cfg := LLMConfig{
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GroqAPIKey:    strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		DefaultModel:  firstNonEmpty(strings.TrimSpace(os.Getenv("DEFAULT_MODEL")), llm.DefaultModel),
		RetryAttempts: 3,
	}
	if v := strings.TrimSpace(os.Getenv("LLM_RPS")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RPS = f
		}
	}
	if v := strings.TrimSpace(os.Getenv("LLM_BURST")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Burst = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("LLM_RETRY_ATTEMPTS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetryAttempts = n
		}
	}
	return cfg
}

func loadArchiveConfig() ArchiveConfig {
	endpoint := strings.TrimSpace(os.Getenv("ARCHIVE_S3_ENDPOINT"))
	return ArchiveConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_BUCKET")), "flowradar-analyses"),
		UseSSL:    resolveArchiveUseSSL(),
	}
}

func resolveArchiveUseSSL() bool {
	raw := strings.TrimSpace(os.Getenv("ARCHIVE_S3_USE_SSL"))
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
