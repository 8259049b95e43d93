// Package provider loads documents of various formats into the common
// span model. The PDF provider carries real geometry, font sizes, link
// flags, and outline bookmarks; the text-based providers synthesize
// geometry so the same classification pipeline applies.
package provider

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MatLN8/pdf-restruct/internal/span"
)

// Provider converts raw document bytes into a span Document.
type Provider interface {
	Parse(r io.Reader, filename string) (*span.Document, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".txt":      true,
}

// ForFile returns the provider for a filename, by extension.
func ForFile(filename string) (Provider, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return &PDFProvider{}, nil
	case ".md", ".markdown":
		return &MarkdownProvider{}, nil
	case ".html", ".htm":
		return &HTMLProvider{}, nil
	case ".docx":
		return &DOCXProvider{}, nil
	case ".txt":
		return &TextProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}
