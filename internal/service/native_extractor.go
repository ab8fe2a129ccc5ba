package service

import (
	"bytes"
	"fmt"
	"strings"

	"resume-parser/internal/domain"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor extracts PDF text with a pure Go reader, for builds without cgo.
type NativeExtractor struct {
	logger domain.Logger
}

// NewNativeExtractor creates a new pure Go extractor
func NewNativeExtractor(logger domain.Logger) *NativeExtractor {
	return &NativeExtractor{
		logger: logger,
	}
}

// Name returns the engine name
func (e *NativeExtractor) Name() string {
	return EngineNative
}

// ExtractText concatenates the text of every page in order.
// Pages without a readable content stream contribute no text.
func (e *NativeExtractor) ExtractText(document []byte) (string, error) {
	if err := validateContainer(document); err != nil {
		return "", err
	}

	reader, err := openReader(document)
	if err != nil {
		return "", domain.NewDocumentParseError("failed to open PDF", err)
	}

	numPages := reader.NumPage()
	e.logger.Debug("PDF opened", "engine", EngineNative, "pages", numPages)

	var sb strings.Builder
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		text, err := pageText(reader, pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page_num", pageNum, "total", numPages, "error", err)
			continue
		}
		sb.WriteString(unitText(text))
	}

	return sb.String(), nil
}

// openReader recovers from reader panics on malformed cross-reference data.
func openReader(document []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()
	return pdf.NewReader(bytes.NewReader(document), int64(len(document)))
}

func pageText(reader *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page %d: %v", pageNum, r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
