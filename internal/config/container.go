package config

import (
	"fmt"

	"resume-parser/internal/domain"
	"resume-parser/internal/service"
	"resume-parser/internal/vocabulary"
	"resume-parser/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config        domain.Config
	Logger        domain.Logger
	Vocabulary    domain.SkillVocabulary
	TextExtractor domain.TextExtractor
	ResumeService domain.ResumeParser
}

// NewContainer creates a new dependency injection container.
// It fails when the vocabulary cannot be loaded or an enumerated setting is invalid.
func NewContainer(config domain.Config) (*Container, error) {
	appLogger := logger.NewLogger(config.GetLogLevel(), config.GetLogFormat())
	return NewContainerWithLogger(config, appLogger)
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger
func NewContainerWithLogger(config domain.Config, appLogger domain.Logger) (*Container, error) {
	vocab, err := vocabulary.Resolve(config.GetSkillsFile(), config.GetSkills())
	if err != nil {
		return nil, fmt.Errorf("load skill vocabulary: %w", err)
	}

	mode, err := domain.ParseSkillMatchMode(config.GetSkillMatchMode())
	if err != nil {
		return nil, err
	}

	extractor, err := service.NewTextExtractor(config.GetPDFEngine(), appLogger)
	if err != nil {
		return nil, err
	}

	appLogger.Info("Skill vocabulary loaded", "skills", vocab.Len(), "match_mode", mode, "engine", extractor.Name())

	return &Container{
		Config:        config,
		Logger:        appLogger,
		Vocabulary:    vocab,
		TextExtractor: extractor,
		ResumeService: service.NewResumeService(extractor, vocab, mode, appLogger),
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetResumeService returns the extraction pipeline
func (c *Container) GetResumeService() domain.ResumeParser {
	return c.ResumeService
}
