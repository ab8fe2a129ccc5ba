package config

import (
	"os"
	"strconv"
	"strings"

	"resume-parser/internal/domain"
)

const (
	defaultMaxFileSize     int64 = 10 * 1024 * 1024
	defaultRateLimitBurst        = 10
	defaultShutdownTimeout       = 10
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000", // React dev server
	"http://localhost:5173", // Vite dev server
}

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort             string
	MaxFileSize            int64
	LogLevel               string
	LogFormat              string
	PDFEngine              string
	SkillsFile             string
	Skills                 string
	SkillMatchMode         string
	AllowedOrigins         []string
	RateLimitRPS           float64
	RateLimitBurst         int
	ShutdownTimeoutSeconds int
}

// NewConfig creates a new configuration instance from the environment
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:             getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:            getEnvInt64OrDefault("MAX_FILE_SIZE", defaultMaxFileSize),
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:              getEnvOrDefault("LOG_FORMAT", "text"),
		PDFEngine:              getEnvOrDefault("PDF_ENGINE", "fitz"),
		SkillsFile:             getEnvOrDefault("SKILLS_FILE", ""),
		Skills:                 getEnvOrDefault("SKILLS", ""),
		SkillMatchMode:         getEnvOrDefault("SKILL_MATCH_MODE", string(domain.SkillMatchSubstring)),
		AllowedOrigins:         getEnvListOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		RateLimitRPS:           getEnvFloatOrDefault("RATE_LIMIT_RPS", 0),
		RateLimitBurst:         int(getEnvInt64OrDefault("RATE_LIMIT_BURST", defaultRateLimitBurst)),
		ShutdownTimeoutSeconds: int(getEnvInt64OrDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log output format
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetPDFEngine returns the text extraction engine name
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetSkillsFile returns the vocabulary file path
func (c *AppConfig) GetSkillsFile() string {
	return c.SkillsFile
}

// GetSkills returns the comma-separated vocabulary
func (c *AppConfig) GetSkills() string {
	return c.Skills
}

// GetSkillMatchMode returns the skill match mode
func (c *AppConfig) GetSkillMatchMode() string {
	return c.SkillMatchMode
}

// GetAllowedOrigins returns the CORS allowed origins
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetRateLimitRPS returns the parse requests allowed per second (0 disables)
func (c *AppConfig) GetRateLimitRPS() float64 {
	return c.RateLimitRPS
}

// GetRateLimitBurst returns the rate limiter burst size
func (c *AppConfig) GetRateLimitBurst() int {
	return c.RateLimitBurst
}

// GetShutdownTimeoutSeconds returns the graceful shutdown timeout
func (c *AppConfig) GetShutdownTimeoutSeconds() int {
	return c.ShutdownTimeoutSeconds
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue >= 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil && floatValue >= 0 {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
