// Package extract pulls text content and document metadata out of the file
// formats the classifier understands. Extractors are looked up by file
// extension through a Registry.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrUnsupported is returned by Registry.For when no extractor is registered
// for a file's extension.
var ErrUnsupported = errors.New("unsupported file extension")

// Metadata holds the document properties an extractor can recover. Fields a
// format does not carry are left zero.
type Metadata struct {
	Title          string
	Author         string
	Subject        string
	Keywords       string
	Created        time.Time
	Modified       time.Time
	PageCount      int
	SlideCount     int
	SheetNames     []string
	ParagraphCount int
	LineCount      int
	WordCount      int
	CharCount      int
}

// Extractor reads a single file format.
type Extractor interface {
	Text(path string) (string, error)
	Metadata(path string) (Metadata, error)
}

// Registry maps file extensions to extractors.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry returns a registry covering the default format table: PDF,
// DOCX/DOC, XLSX/XLS/CSV, PPTX/PPT, and common plain-text extensions.
func NewRegistry() Registry {
	text := NewTextExtractor()
	pdf := NewPDFExtractor()
	docx := NewDOCXExtractor()
	xlsx := NewXLSXExtractor()
	pptx := NewPPTXExtractor()

	extractors := map[string]Extractor{
		".pdf":  pdf,
		".docx": docx,
		".doc":  docx,
		".xlsx": xlsx,
		".xls":  xlsx,
		".csv":  xlsx,
		".pptx": pptx,
		".ppt":  pptx,
	}

	for _, ext := range []string{".txt", ".md", ".py", ".js", ".java", ".cpp", ".c", ".h", ".json", ".xml", ".html", ".css"} {
		extractors[ext] = text
	}

	return Registry{extractors: extractors}
}

// For returns the extractor registered for the file's extension.
func (r Registry) For(path string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))

	extractor, ok := r.extractors[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	return extractor, nil
}

// Text extracts the content of path using the extractor registered for its
// extension.
func (r Registry) Text(path string) (string, error) {
	extractor, err := r.For(path)
	if err != nil {
		return "", err
	}

	return extractor.Text(path)
}

// Register adds or replaces the extractor for an extension.
func (r Registry) Register(ext string, extractor Extractor) {
	r.extractors[strings.ToLower(ext)] = extractor
}

// SupportedExtensions lists registered extensions in sorted order.
func (r Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.extractors))
	for ext := range r.extractors {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Snippet truncates text to at most max characters, appending an ellipsis
// when content was dropped.
func Snippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
