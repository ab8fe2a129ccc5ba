package service

import (
	"errors"
	"testing"

	"resume-parser/internal/domain"
	"resume-parser/internal/pdftest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultVocabulary = domain.NewSkillVocabulary("Java", "Spring Boot", "Python", "SQL", "React", "Docker")

func TestResumeService_Parse_ContactScenario(t *testing.T) {
	stub := &StubExtractor{text: "Contact: jane.doe@example.com or +1 415-555-0199. Skills: Python, React."}
	svc := NewResumeService(stub, defaultVocabulary, domain.SkillMatchSubstring, NewMockLogger())

	result, err := svc.Parse([]byte("ignored"))
	require.NoError(t, err)

	assert.Equal(t, stub.text, result.RawText)
	assert.Equal(t, []string{"jane.doe@example.com"}, result.Emails)
	assert.Equal(t, []string{"+1 415-555-0199"}, result.Phones)
	assert.Equal(t, []string{"Python", "React"}, result.Skills)
}

func TestResumeService_Parse_EmptyText(t *testing.T) {
	svc := NewResumeService(&StubExtractor{}, defaultVocabulary, domain.SkillMatchSubstring, NewMockLogger())

	result, err := svc.Parse([]byte("ignored"))
	require.NoError(t, err)

	assert.Equal(t, "", result.RawText)
	assert.Equal(t, []string{}, result.Skills)
	assert.Equal(t, []string{}, result.Emails)
	assert.Equal(t, []string{}, result.Phones)
}

func TestResumeService_Parse_PropagatesParseError(t *testing.T) {
	parseErr := domain.NewDocumentParseError("missing PDF header", nil)
	svc := NewResumeService(&StubExtractor{err: parseErr}, defaultVocabulary, domain.SkillMatchSubstring, NewMockLogger())

	result, err := svc.Parse([]byte("not a pdf"))

	assert.Nil(t, result)
	assert.Same(t, parseErr, err)
	assert.True(t, errors.Is(err, domain.ErrDocumentParse))
}

func TestResumeService_Parse_Idempotent(t *testing.T) {
	doc := pdftest.Build("Jane Doe jane.doe@example.com +44 20 7946 0018", "Java, Spring Boot, SQL", "")
	svc := NewResumeService(NewNativeExtractor(NewMockLogger()), defaultVocabulary, domain.SkillMatchSubstring, NewMockLogger())

	first, err := svc.Parse(doc)
	require.NoError(t, err)
	second, err := svc.Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Java", "Spring Boot", "SQL"}, first.Skills)
	assert.Equal(t, []string{"jane.doe@example.com"}, first.Emails)
	assert.Equal(t, []string{"+44 20 7946 0018"}, first.Phones)
}

func TestResumeService_Parse_EmptyDocument(t *testing.T) {
	svc := NewResumeService(NewNativeExtractor(NewMockLogger()), defaultVocabulary, domain.SkillMatchSubstring, NewMockLogger())

	result, err := svc.Parse(pdftest.Build("", ""))
	require.NoError(t, err)

	assert.Equal(t, domain.NewExtractionResult("", nil, nil, nil), result)
}

func TestResumeService_Analyze_WordMode(t *testing.T) {
	svc := NewResumeService(&StubExtractor{}, defaultVocabulary, domain.SkillMatchWord, NewMockLogger())

	result := svc.Analyze("JavaScript, PostgreSQL, React")

	assert.Equal(t, []string{"React"}, result.Skills)
}

func TestResumeService_Analyze_RawTextNotTruncated(t *testing.T) {
	svc := NewResumeService(&StubExtractor{}, defaultVocabulary, domain.SkillMatchSubstring, NewMockLogger())
	long := make([]byte, 1<<20)
	for i := range long {
		long[i] = 'a'
	}

	result := svc.Analyze(string(long))

	assert.Len(t, result.RawText, 1<<20)
}
