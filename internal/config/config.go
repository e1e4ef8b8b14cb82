package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	Environment  string
	CVPath       string // Markdown CV with YAML front matter
	PageTemplate string // Optional HTML shell; must contain <header> for the header to mount
	StaticDir    string // Serves cv.pdf and page assets
	CORSOrigins  string
	// Render API
	RenderRateLimit float64 // Requests per second for POST /api/header/render
	RenderBurst     int
	// Logging
	LogDir      string
	LogMaxFiles int
	// Tracing
	ServiceName string
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     env,
		CVPath:          getEnv("CV_PATH", "cv.md"),
		PageTemplate:    getEnv("PAGE_TEMPLATE", ""),
		StaticDir:       getEnv("STATIC_DIR", "public"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		RenderRateLimit: getEnvFloat("RENDER_RATE_LIMIT", 5),
		RenderBurst:     getEnvInt("RENDER_BURST", 10),
		LogDir:          getEnv("LOG_DIR", ""),
		LogMaxFiles:     getEnvInt("LOG_MAX_FILES", 10),
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "cvpage"),
	}
}

// IsDev reports whether debug logging and verbose errors should be enabled
func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && f > 0 {
		return f
	}
	return defaultValue
}
