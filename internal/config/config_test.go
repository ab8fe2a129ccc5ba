package config

import (
	"reflect"
	"testing"
)

var configEnv = []string{
	"PORT", "SERVER_PORT", "MAX_FILE_SIZE", "LOG_LEVEL", "LOG_FORMAT", "PDF_ENGINE",
	"SKILLS_FILE", "SKILLS", "SKILL_MATCH_MODE", "CORS_ALLOWED_ORIGINS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetLogFormat() != "text" {
		t.Fatalf("expected default log format text, got %s", cfg.GetLogFormat())
	}
	if cfg.GetPDFEngine() != "fitz" {
		t.Fatalf("expected default engine fitz, got %s", cfg.GetPDFEngine())
	}
	if cfg.GetSkillsFile() != "" || cfg.GetSkills() != "" {
		t.Fatalf("expected no vocabulary source, got file=%q list=%q", cfg.GetSkillsFile(), cfg.GetSkills())
	}
	if cfg.GetSkillMatchMode() != "substring" {
		t.Fatalf("expected default match mode substring, got %s", cfg.GetSkillMatchMode())
	}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), defaultAllowedOrigins) {
		t.Fatalf("expected default origins %v, got %v", defaultAllowedOrigins, cfg.GetAllowedOrigins())
	}
	if cfg.GetRateLimitRPS() != 0 {
		t.Fatalf("expected rate limiting disabled, got %v", cfg.GetRateLimitRPS())
	}
	if cfg.GetRateLimitBurst() != defaultRateLimitBurst {
		t.Fatalf("expected default burst %d, got %d", defaultRateLimitBurst, cfg.GetRateLimitBurst())
	}
	if cfg.GetShutdownTimeoutSeconds() != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout %d, got %d", defaultShutdownTimeout, cfg.GetShutdownTimeoutSeconds())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PDF_ENGINE", "native")
	t.Setenv("SKILLS_FILE", "/etc/skills.yaml")
	t.Setenv("SKILLS", "Go,Rust")
	t.Setenv("SKILL_MATCH_MODE", "word")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("SHUTDOWN_TIMEOUT", "30")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" || cfg.GetLogFormat() != "json" {
		t.Fatalf("expected debug/json logging, got %s/%s", cfg.GetLogLevel(), cfg.GetLogFormat())
	}
	if cfg.GetPDFEngine() != "native" {
		t.Fatalf("expected engine native, got %s", cfg.GetPDFEngine())
	}
	if cfg.GetSkillsFile() != "/etc/skills.yaml" || cfg.GetSkills() != "Go,Rust" {
		t.Fatalf("unexpected vocabulary sources file=%q list=%q", cfg.GetSkillsFile(), cfg.GetSkills())
	}
	if cfg.GetSkillMatchMode() != "word" {
		t.Fatalf("expected match mode word, got %s", cfg.GetSkillMatchMode())
	}
	want := []string{"https://app.example.com", "https://admin.example.com"}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.GetAllowedOrigins())
	}
	if cfg.GetRateLimitRPS() != 2.5 || cfg.GetRateLimitBurst() != 4 {
		t.Fatalf("expected rate limit 2.5/4, got %v/%d", cfg.GetRateLimitRPS(), cfg.GetRateLimitBurst())
	}
	if cfg.GetShutdownTimeoutSeconds() != 30 {
		t.Fatalf("expected shutdown timeout 30, got %d", cfg.GetShutdownTimeoutSeconds())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("RATE_LIMIT_RPS", "-1")
	t.Setenv("RATE_LIMIT_BURST", "-3")
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetRateLimitRPS() != 0 {
		t.Fatalf("expected negative rate to fall back to 0, got %v", cfg.GetRateLimitRPS())
	}
	if cfg.GetRateLimitBurst() != defaultRateLimitBurst {
		t.Fatalf("expected default burst, got %d", cfg.GetRateLimitBurst())
	}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), defaultAllowedOrigins) {
		t.Fatalf("expected default origins, got %v", cfg.GetAllowedOrigins())
	}
}
