package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// TextExtractor reads plain-text files, decoding non-UTF-8 content through a
// fallback chain: UTF-16 (when a BOM is present), GBK, then windows-1252.
type TextExtractor struct{}

func NewTextExtractor() TextExtractor {
	return TextExtractor{}
}

func (e TextExtractor) Text(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}

	return decodeText(raw), nil
}

func (e TextExtractor) Metadata(path string) (Metadata, error) {
	text, err := e.Text(path)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{
		LineCount: strings.Count(text, "\n") + 1,
		WordCount: len(strings.Fields(text)),
		CharCount: len([]rune(text)),
	}, nil
}

func decodeText(raw []byte) string {
	if hasUTF16BOM(raw) {
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(raw)
		if err == nil {
			return string(decoded)
		}
	}

	if utf8.Valid(raw) {
		return strings.TrimPrefix(string(raw), "\ufeff")
	}

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded)
	}

	// windows-1252 maps every byte, so this cannot fail.
	decoded, _ = charmap.Windows1252.NewDecoder().Bytes(raw)
	return string(decoded)
}

func hasUTF16BOM(raw []byte) bool {
	return len(raw) >= 2 &&
		((raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF))
}
