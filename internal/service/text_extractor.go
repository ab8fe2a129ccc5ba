package service

import (
	"bytes"
	"fmt"
	"strings"

	"resume-parser/internal/domain"
)

// Extraction engine names accepted by NewTextExtractor.
const (
	EngineFitz   = "fitz"
	EngineNative = "native"
)

// headerSearchWindow is how far into the document the PDF header may start.
const headerSearchWindow = 1024

var pdfMagic = []byte("%PDF-")

// NewTextExtractor returns the extraction engine registered under engine.
// An empty name selects the fitz engine.
func NewTextExtractor(engine string, logger domain.Logger) (domain.TextExtractor, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineFitz:
		return NewFitzExtractor(logger), nil
	case EngineNative:
		return NewNativeExtractor(logger), nil
	default:
		return nil, fmt.Errorf("unknown PDF engine %q (want %q or %q)", engine, EngineFitz, EngineNative)
	}
}

// validateContainer rejects input that cannot be a PDF before it reaches an engine.
func validateContainer(document []byte) error {
	if len(document) == 0 {
		return domain.NewDocumentParseError("empty document", nil)
	}
	window := document
	if len(window) > headerSearchWindow {
		window = window[:headerSearchWindow]
	}
	if !bytes.Contains(window, pdfMagic) {
		return domain.NewDocumentParseError("missing PDF header", nil)
	}
	return nil
}

// unitText drops invalid UTF-8 so that JSON encoding never rewrites the text.
func unitText(text string) string {
	return strings.ToValidUTF8(text, "")
}
