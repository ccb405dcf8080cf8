package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// Shared helpers for the OOXML-based formats (DOCX, PPTX). Both are zip
// archives of XML parts; text lives in `w:t` (WordprocessingML) or `a:t`
// (DrawingML) elements and document properties in docProps/core.xml.

func readZipPart(archive *zip.ReadCloser, name string) ([]byte, error) {
	for _, file := range archive.File {
		if file.Name != name {
			continue
		}

		reader, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		return io.ReadAll(reader)
	}

	return nil, fmt.Errorf("archive part %q not found", name)
}

// collectElementText walks an XML part and joins the character data of every
// element named textElement. Each group element boundary (paragraph, table
// row) emits a newline.
func collectElementText(part []byte, textElement, groupElement string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(part)))

	var b strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decoding xml part: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == textElement {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == textElement {
				inText = false
			}
			if t.Name.Local == groupElement {
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), nil
}

type coreProperties struct {
	Title          string `xml:"title"`
	Creator        string `xml:"creator"`
	Subject        string `xml:"subject"`
	Keywords       string `xml:"keywords"`
	Created        string `xml:"created"`
	Modified       string `xml:"modified"`
	LastModifiedBy string `xml:"lastModifiedBy"`
}

func readCoreProperties(archive *zip.ReadCloser) (Metadata, error) {
	part, err := readZipPart(archive, "docProps/core.xml")
	if err != nil {
		// Core properties are optional in practice.
		return Metadata{}, nil
	}

	var props coreProperties
	if err := xml.Unmarshal(part, &props); err != nil {
		return Metadata{}, fmt.Errorf("decoding core properties: %w", err)
	}

	metadata := Metadata{
		Title:    props.Title,
		Author:   props.Creator,
		Subject:  props.Subject,
		Keywords: props.Keywords,
	}
	if t, err := time.Parse(time.RFC3339, props.Created); err == nil {
		metadata.Created = t
	}
	if t, err := time.Parse(time.RFC3339, props.Modified); err == nil {
		metadata.Modified = t
	}

	return metadata, nil
}

func cleanLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
