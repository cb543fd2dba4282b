package docext

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
	".html": true,
	".htm":  true,
}

// SupportedExtension reports whether the filename has a supported extension.
func SupportedExtension(filename string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SupportedExtensionsList returns the whitelist for error messages.
func SupportedExtensionsList() string {
	return ".doc, .docx, .htm, .html, .pdf, .txt"
}

// ValidateUpload checks an uploaded file before extraction: extension,
// size limit, emptiness and per-format magic bytes. It returns every
// problem found, not just the first.
func ValidateUpload(data []byte, filename string, maxSizeMB int) []string {
	var errs []string

	if strings.TrimSpace(filename) == "" {
		return []string{"filename is required"}
	}
	if !SupportedExtension(filename) {
		errs = append(errs, fmt.Sprintf("unsupported file type, supported formats: %s", SupportedExtensionsList()))
	}
	maxBytes := int64(maxSizeMB) << 20
	if int64(len(data)) > maxBytes {
		actualMB := float64(len(data)) / (1 << 20)
		errs = append(errs, fmt.Sprintf("file too large (%.2fMB), maximum size: %dMB", actualMB, maxSizeMB))
	}
	if len(data) == 0 {
		errs = append(errs, "file is empty")
		return errs
	}

	errs = append(errs, validateContent(data, strings.ToLower(filepath.Ext(filename)))...)
	return errs
}

// Magic byte checks for the binary formats; cheap decode checks for the
// text formats.
func validateContent(data []byte, ext string) []string {
	var errs []string
	switch ext {
	case ".pdf":
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			errs = append(errs, "invalid PDF file format")
		}
	case ".docx":
		// DOCX is a ZIP archive
		if !bytes.HasPrefix(data, []byte("PK")) {
			errs = append(errs, "invalid DOCX file format")
		}
	case ".doc":
		if !bytes.HasPrefix(data, []byte{0xd0, 0xcf, 0x11, 0xe0}) &&
			!bytes.HasPrefix(data, []byte{0x0d, 0x44, 0x4f, 0x43}) {
			errs = append(errs, "invalid DOC file format")
		}
	case ".txt":
		if !utf8.Valid(data) && !looksLikeLatin1Text(data) {
			errs = append(errs, "text file contains invalid characters")
		}
	case ".html", ".htm":
		lower := strings.ToLower(string(data))
		if !strings.Contains(lower, "<html") && !strings.Contains(lower, "<body") &&
			!strings.Contains(lower, "<div") && !strings.Contains(lower, "<p") {
			errs = append(errs, "file does not appear to contain valid HTML")
		}
	}
	return errs
}

// looksLikeLatin1Text accepts single-byte encodings as long as the bytes
// are printable or common whitespace.
func looksLikeLatin1Text(data []byte) bool {
	for _, b := range data {
		if b >= 0x20 || b == '\n' || b == '\r' || b == '\t' {
			continue
		}
		return false
	}
	return true
}
