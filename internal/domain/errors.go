package domain

import "errors"

// ErrDocumentParse matches every DocumentParseError via errors.Is.
var ErrDocumentParse = errors.New("document parse error")

// DocumentParseError reports that the byte stream is not a readable document
// of the supported container format.
type DocumentParseError struct {
	Reason string
	Cause  error
}

// NewDocumentParseError creates a DocumentParseError with an optional cause.
func NewDocumentParseError(reason string, cause error) *DocumentParseError {
	return &DocumentParseError{Reason: reason, Cause: cause}
}

func (e *DocumentParseError) Error() string {
	if e.Cause != nil {
		return "document parse error: " + e.Reason + ": " + e.Cause.Error()
	}
	return "document parse error: " + e.Reason
}

func (e *DocumentParseError) Unwrap() error {
	return e.Cause
}

func (e *DocumentParseError) Is(target error) bool {
	return target == ErrDocumentParse
}
