package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXExtractor reads spreadsheets. XLSX workbooks go through excelize with
// each sheet prefixed by its name; CSV files are read directly.
type XLSXExtractor struct{}

func NewXLSXExtractor() XLSXExtractor {
	return XLSXExtractor{}
}

func (e XLSXExtractor) Text(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return e.csvText(path)
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening workbook: %w", err)
	}
	defer workbook.Close()

	var content []string
	for _, sheet := range workbook.GetSheetList() {
		content = append(content, fmt.Sprintf("[Sheet: %s]", sheet))

		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("reading sheet %q: %w", sheet, err)
		}

		for _, row := range rows {
			line := strings.Join(row, "\t")
			if strings.TrimSpace(line) != "" {
				content = append(content, line)
			}
		}
	}

	return strings.Join(content, "\n"), nil
}

func (e XLSXExtractor) Metadata(path string) (Metadata, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		text, err := e.csvText(path)
		if err != nil {
			return Metadata{}, err
		}
		return Metadata{
			LineCount: strings.Count(text, "\n") + 1,
			CharCount: len([]rune(text)),
		}, nil
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer workbook.Close()

	metadata := Metadata{SheetNames: workbook.GetSheetList()}

	props, err := workbook.GetDocProps()
	if err == nil && props != nil {
		metadata.Title = props.Title
		metadata.Author = props.Creator
		metadata.Subject = props.Subject
		metadata.Keywords = props.Keywords
	}

	return metadata, nil
}

func (e XLSXExtractor) csvText(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var content []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading csv: %w", err)
		}
		content = append(content, strings.Join(record, "\t"))
	}

	return strings.Join(content, "\n"), nil
}
