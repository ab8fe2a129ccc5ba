// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"resume-parser/internal/domain"
	apperrors "resume-parser/pkg/errors"
)

const (
	// multipartOverhead is allowed on top of the file size for boundaries and headers.
	multipartOverhead  = 1 << 20
	maxMultipartMemory = 8 << 20
)

// ParseHandler handles resume upload and extraction requests
type ParseHandler struct {
	parser      domain.ResumeParser
	logger      domain.Logger
	maxFileSize int64
}

// NewParseHandler creates a new parse handler
func NewParseHandler(parser domain.ResumeParser, logger domain.Logger, maxFileSize int64) *ParseHandler {
	return &ParseHandler{
		parser:      parser,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// ParseResume handles POST /parse with a multipart "file" field
func (h *ParseHandler) ParseResume(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r)
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, apperrors.NewPayloadTooLargeError(h.maxFileSize))
			return
		}
		writeError(w, apperrors.NewValidationError("Invalid multipart request", err.Error()))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, apperrors.NewValidationError("File is required", `multipart field "file" is missing`))
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		writeError(w, apperrors.NewPayloadTooLargeError(h.maxFileSize))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		h.logger.Error("Failed to read upload", err, "request_id", requestID)
		writeError(w, apperrors.NewInternalError("Failed to read upload", err))
		return
	}
	if int64(len(data)) > h.maxFileSize {
		writeError(w, apperrors.NewPayloadTooLargeError(h.maxFileSize))
		return
	}

	filename := filepath.Base(header.Filename)
	result, err := h.parser.Parse(data)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentParse) {
			h.logger.Warn("Document could not be parsed", "request_id", requestID, "filename", filename, "error", err)
			writeError(w, apperrors.NewProcessingError("Failed to parse document", err))
			return
		}
		h.logger.Error("Resume extraction failed", err, "request_id", requestID, "filename", filename)
		writeError(w, apperrors.NewInternalError("Failed to process document", err))
		return
	}

	h.logger.Info("Resume parsed",
		"request_id", requestID,
		"filename", filename,
		"bytes", len(data),
		"skills", len(result.Skills),
		"emails", len(result.Emails),
		"phones", len(result.Phones),
	)
	writeJSON(w, http.StatusOK, result)
}
