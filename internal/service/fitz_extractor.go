package service

import (
	"strings"

	"resume-parser/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzExtractor extracts PDF text with MuPDF.
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a new MuPDF-backed extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{
		logger: logger,
	}
}

// Name returns the engine name
func (e *FitzExtractor) Name() string {
	return EngineFitz
}

// ExtractText concatenates the text of every page in order.
// Pages MuPDF cannot read contribute no text.
func (e *FitzExtractor) ExtractText(document []byte) (string, error) {
	if err := validateContainer(document); err != nil {
		return "", err
	}

	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		if doc != nil {
			doc.Close()
		}
		return "", domain.NewDocumentParseError("failed to open PDF", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	e.logger.Debug("PDF opened", "engine", EngineFitz, "pages", numPages)

	var sb strings.Builder
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err)
			continue
		}
		sb.WriteString(unitText(text))
	}

	return sb.String(), nil
}
