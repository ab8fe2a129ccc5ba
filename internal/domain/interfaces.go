package domain

// TextExtractor converts raw document bytes into plain text.
type TextExtractor interface {
	Name() string
	ExtractText(document []byte) (string, error)
}

// ResumeParser runs the full extraction pipeline over one document.
type ResumeParser interface {
	Parse(document []byte) (*ExtractionResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetPDFEngine() string
	GetSkillsFile() string
	GetSkills() string
	GetSkillMatchMode() string
	GetAllowedOrigins() []string
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
	GetShutdownTimeoutSeconds() int
}
