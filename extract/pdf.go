package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads the text layer of PDF documents. Scanned PDFs without a
// text layer yield little or no content and the classifier falls back to the
// file name.
type PDFExtractor struct{}

func NewPDFExtractor() PDFExtractor {
	return PDFExtractor{}
}

func (e PDFExtractor) Text(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer file.Close()

	var content []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single damaged page should not sink the whole document.
			continue
		}
		if strings.TrimSpace(text) != "" {
			content = append(content, text)
		}
	}

	return strings.Join(content, "\n"), nil
}

func (e PDFExtractor) Metadata(path string) (Metadata, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("opening pdf: %w", err)
	}
	defer file.Close()

	return Metadata{PageCount: reader.NumPage()}, nil
}
