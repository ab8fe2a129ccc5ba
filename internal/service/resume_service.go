package service

import (
	"resume-parser/internal/domain"

	"golang.org/x/sync/errgroup"
)

// ResumeService turns document bytes into an ExtractionResult.
type ResumeService struct {
	extractor domain.TextExtractor
	skills    *SkillMatcher
	logger    domain.Logger
}

// NewResumeService wires an extraction engine and a read-only vocabulary
// into a pipeline.
func NewResumeService(
	extractor domain.TextExtractor,
	vocabulary domain.SkillVocabulary,
	mode domain.SkillMatchMode,
	logger domain.Logger,
) *ResumeService {
	return &ResumeService{
		extractor: extractor,
		skills:    NewSkillMatcher(vocabulary, mode),
		logger:    logger,
	}
}

// Parse extracts the document text and runs the recognizers over it.
// Extraction errors are returned unchanged and no partial result is produced.
func (s *ResumeService) Parse(document []byte) (*domain.ExtractionResult, error) {
	text, err := s.extractor.ExtractText(document)
	if err != nil {
		return nil, err
	}

	result := s.Analyze(text)
	s.logger.Debug("Resume parsed",
		"engine", s.extractor.Name(),
		"bytes", len(document),
		"text_length", len(text),
		"skills", len(result.Skills),
		"emails", len(result.Emails),
		"phones", len(result.Phones),
	)
	return result, nil
}

// Analyze runs the email, phone and skill recognizers over text.
// They only read text, so they run in parallel.
func (s *ResumeService) Analyze(text string) *domain.ExtractionResult {
	var emails, phones, skills []string

	var g errgroup.Group
	g.Go(func() error {
		emails = ExtractEmails(text)
		return nil
	})
	g.Go(func() error {
		phones = ExtractPhones(text)
		return nil
	})
	g.Go(func() error {
		skills = s.skills.Match(text)
		return nil
	})
	_ = g.Wait()

	return domain.NewExtractionResult(text, skills, emails, phones)
}
