package handler

import (
	"sync"

	"resume-parser/internal/domain"
)

// MockHandlerLogger records log messages for assertions.
type MockHandlerLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

func (m *MockHandlerLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockHandlerLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

func (m *MockHandlerLogger) Info(msg string, args ...interface{})  { m.record("INFO: " + msg) }
func (m *MockHandlerLogger) Debug(msg string, args ...interface{}) { m.record("DEBUG: " + msg) }
func (m *MockHandlerLogger) Warn(msg string, args ...interface{})  { m.record("WARN: " + msg) }
func (m *MockHandlerLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: " + msg + " - " + err.Error())
}

// MockResumeParser returns a canned result or error.
type MockResumeParser struct {
	result   *domain.ExtractionResult
	err      error
	received []byte
}

func (m *MockResumeParser) Parse(document []byte) (*domain.ExtractionResult, error) {
	m.received = document
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}
