package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	InputDir      string
	OutputDir     string
	TablesPath    string  // YAML с таблицами приоритетов, пусто — стандартные
	MinArea       float64 // минимальная площадь контура
	ReportDB      string  // файл SQLite для отчётов, пусто — в памяти
	LogLevel      string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		InputDir:      getEnv("RESCUE_INPUT_DIR", "images"),
		OutputDir:     getEnv("RESCUE_OUTPUT_DIR", "output"),
		TablesPath:    os.Getenv("RESCUE_TABLES"),
		ReportDB:      os.Getenv("RESCUE_DB"),
		LogLevel:      getEnv("RESCUE_LOG_LEVEL", "info"),
		MinArea:       150,
	}

	if v := os.Getenv("RESCUE_MIN_AREA"); v != "" {
		minArea, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse RESCUE_MIN_AREA: %w", err)
		}
		cfg.MinArea = minArea
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
