package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

type Config struct {
	WebhookURL  string
	StateFile   string
	CommitFile  string
	StoresFile  string
	HTTPTimeout time.Duration
	LogLevel    slog.Level

	S3Endpoint  string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Region    string
	S3StateKey  string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		WebhookURL:  os.Getenv("WEBHOOK_URL"),
		StateFile:   getEnv("STATE_FILE", "current_ver.json"),
		CommitFile:  getEnv("COMMIT_FILE", "commit.txt"),
		StoresFile:  os.Getenv("STORES_FILE"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
	}
	cfg.S3StateKey = getEnv("S3_STATE_KEY", cfg.StateFile)

	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("WEBHOOK_URL is required")
	}

	timeout := getEnv("HTTP_TIMEOUT", "15s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", timeout, err)
	}
	cfg.HTTPTimeout = d

	level := getEnv("LOG_LEVEL", "info")
	if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	if cfg.S3Bucket != "" {
		if cfg.S3Endpoint == "" {
			return nil, fmt.Errorf("S3_ENDPOINT is required when S3_BUCKET is set")
		}
		if cfg.S3AccessKey == "" {
			return nil, fmt.Errorf("S3_ACCESS_KEY is required when S3_BUCKET is set")
		}
		if cfg.S3SecretKey == "" {
			return nil, fmt.Errorf("S3_SECRET_KEY is required when S3_BUCKET is set")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
