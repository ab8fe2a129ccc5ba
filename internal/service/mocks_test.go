package service

import (
	"sync"

	"resume-parser/internal/domain"
)

// MockLogger records log messages for assertions.
type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, fields ...interface{})  { m.record("INFO: " + msg) }
func (m *MockLogger) Debug(msg string, fields ...interface{}) { m.record("DEBUG: " + msg) }
func (m *MockLogger) Warn(msg string, fields ...interface{})  { m.record("WARN: " + msg) }
func (m *MockLogger) Error(msg string, err error, fields ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

// StubExtractor returns fixed text or a fixed error.
type StubExtractor struct {
	text  string
	err   error
	calls int
}

func (s *StubExtractor) Name() string { return "stub" }

func (s *StubExtractor) ExtractText(document []byte) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

var _ domain.TextExtractor = (*StubExtractor)(nil)
