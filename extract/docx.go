package extract

import (
	"archive/zip"
	"fmt"
	"strings"
)

// DOCXExtractor reads Word documents, collecting paragraph and table text
// from the main document part.
type DOCXExtractor struct{}

func NewDOCXExtractor() DOCXExtractor {
	return DOCXExtractor{}
}

func (e DOCXExtractor) Text(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}
	defer archive.Close()

	part, err := readZipPart(archive, "word/document.xml")
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}

	text, err := collectElementText(part, "t", "p")
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}

	return cleanLines(text), nil
}

func (e DOCXExtractor) Metadata(path string) (Metadata, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("opening docx: %w", err)
	}
	defer archive.Close()

	metadata, err := readCoreProperties(archive)
	if err != nil {
		return Metadata{}, err
	}

	text, err := e.Text(path)
	if err == nil {
		metadata.ParagraphCount = len(strings.Split(text, "\n"))
		metadata.WordCount = len(strings.Fields(text))
	}

	return metadata, nil
}
