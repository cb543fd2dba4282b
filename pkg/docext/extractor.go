package docext

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extractor turns an uploaded file into a Document. It prefers the hosted
// extraction API and falls back to the per-format local extractors when the
// API is unconfigured, fails, or returns no meaningful content.
type Extractor struct {
	remote *UnstructuredClient
}

func NewExtractor(remote *UnstructuredClient) *Extractor {
	return &Extractor{remote: remote}
}

// Extract parses file content into classified elements.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	doc := Document{
		Filename:      filename,
		FileExtension: ext,
		FileType:      FileTypeName(ext),
	}

	logger := slog.With("component", "docext", "filename", filename)

	if e.remote.Configured() {
		elements, err := e.remote.Partition(ctx, data, filename)
		if err == nil && meaningfulContent(elements) {
			doc.Elements = elements
			return doc, nil
		}
		if err != nil {
			logger.Warn("remote extraction failed, using local fallback", "error", err)
			doc.Warnings = append(doc.Warnings, fmt.Sprintf("remote extraction failed: %v", err))
		} else {
			logger.Warn("remote extraction returned no meaningful content, using local fallback")
			doc.Warnings = append(doc.Warnings, "remote extraction returned no meaningful content")
		}
	}

	elements, warning, err := e.extractLocal(data, ext)
	if err != nil {
		return doc, err
	}
	doc.Elements = elements
	if warning != "" {
		doc.Warnings = append(doc.Warnings, warning)
	}
	return doc, nil
}

func (e *Extractor) extractLocal(data []byte, ext string) ([]Element, string, error) {
	switch ext {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return nil, "", fmt.Errorf("pdf extraction: %w", err)
		}
		return elementsFromText(text, 1), "document parsed using local PDF text extraction", nil
	case ".docx":
		text, err := extractDocxText(data)
		if err != nil {
			return nil, "", fmt.Errorf("docx extraction: %w", err)
		}
		return elementsFromText(text, 1), "document parsed using local Word document extraction", nil
	case ".html", ".htm":
		text, err := extractHTMLText(data)
		if err != nil {
			return nil, "", fmt.Errorf("html extraction: %w", err)
		}
		return elementsFromText(text, 1), "document parsed using local HTML text extraction", nil
	case ".txt":
		return elementsFromText(decodeText(data), 1), "document parsed using plain text extraction", nil
	case ".doc":
		// Legacy OLE format needs the hosted extractor.
		return nil, "", errors.New("doc files require the hosted extraction api")
	default:
		return nil, "", fmt.Errorf("unsupported file extension %q", ext)
	}
}

// meaningfulContent guards against extractions that technically succeed but
// carry nothing usable (empty pages, OCR noise of dots and whitespace).
func meaningfulContent(elements []Element) bool {
	var b strings.Builder
	for _, el := range elements {
		b.WriteString(el.Text)
		b.WriteByte(' ')
	}
	text := strings.TrimSpace(b.String())
	if len(text) <= 50 {
		return false
	}
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '\n', '\t':
			return -1
		}
		return r
	}, text)
	return stripped != ""
}

func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	// Latin-1 bytes map 1:1 to code points.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
