package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-parser/api/http/presenter"
	"resume-parser/pkg/docext"
	"resume-parser/pkg/extract"
	"resume-parser/pkg/history"
)

// ParseHandler runs the full pipeline for an uploaded resume: validate,
// extract document elements, group sections, call the model, persist.
type ParseHandler struct {
	docs      *docext.Extractor
	extractor *extract.UseCase
	store     history.UseCase
	model     string
	maxSizeMB int
	timeout   time.Duration
	log       *slog.Logger
}

func NewParseHandler(docs *docext.Extractor, extractor *extract.UseCase, store history.UseCase, model string, maxSizeMB int, timeout time.Duration, log *slog.Logger) *ParseHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ParseHandler{
		docs:      docs,
		extractor: extractor,
		store:     store,
		model:     model,
		maxSizeMB: maxSizeMB,
		timeout:   timeout,
		log:       log.With("component", "http", "handler", "parse"),
	}
}

// Parse handles resume upload and structured extraction.
// @Summary Parse a resume into the canonical JSON schema
// @Description Accepts a resume file (pdf, docx, doc, txt, html), extracts its text, groups sections and returns structured data.
// @Tags    parse
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "resume file"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ValidationErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /parse [post]
func (h *ParseHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, int64(h.maxSizeMB)<<20)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if errs := docext.ValidateUpload(data, fh.Filename, h.maxSizeMB); len(errs) > 0 {
		return presenter.ValidationError(c, errs)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	doc, err := h.docs.Extract(ctx, data, fh.Filename)
	if err != nil {
		return presenter.Error(c, http.StatusUnprocessableEntity, fmt.Sprintf("document extraction failed: %v", err))
	}

	result, err := h.extractor.Extract(ctx, &doc)
	if err != nil {
		h.log.Error("extraction failed", "operation", "parse", "filename", fh.Filename, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("extraction failed: %v", err))
	}

	id := uuid.New()
	h.persist(c, id, fh, &doc, result)

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":            id.String(),
		"filename":      fh.Filename,
		"fileType":      doc.FileType,
		"model":         h.model,
		"resume":        result.Resume,
		"sections":      result.Sections,
		"tokenUsage":    result.Usage,
		"totalElements": doc.TotalElements(),
		"warnings":      result.Resume.ParserMetadata.ParserWarnings,
	})
}

// persist saves the result for later retrieval. Failures are logged
// and do not fail the request, the extraction already succeeded.
func (h *ParseHandler) persist(c *fiber.Ctx, id uuid.UUID, fh *multipart.FileHeader, doc *docext.Document, result *extract.Result) {
	if h.store == nil {
		return
	}
	resultJSON, err := json.Marshal(result.Resume)
	if err != nil {
		h.log.Error("marshal result for storage", "operation", "parse", "error", err)
		return
	}
	rec := history.Record{
		ID:           id,
		OwnerID:      ownerID(c),
		Filename:     fh.Filename,
		FileType:     doc.FileType,
		SizeBytes:    fh.Size,
		Model:        h.model,
		Result:       resultJSON,
		Warnings:     result.Resume.ParserMetadata.ParserWarnings,
		InputTokens:  result.Usage.InputTokens,
		OutputTokens: result.Usage.OutputTokens,
		TotalCost:    result.Usage.TotalCost,
	}
	if err := h.store.Save(c.Context(), rec); err != nil {
		h.log.Error("save parse result", "operation", "parse", "id", id.String(), "error", err)
	}
}

func ownerID(c *fiber.Ctx) *uuid.UUID {
	s, _ := c.Locals("userId").(string)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
