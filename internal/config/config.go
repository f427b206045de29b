package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	LogLevel        string
	OTELEndpoint    string
	OTELServiceName string
	MetricsTextfile string
	ScenarioFile    string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "homecost"),
		MetricsTextfile: getEnvString("METRICS_TEXTFILE", ""),
		ScenarioFile:    getEnvString("SCENARIO_FILE", ""),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
