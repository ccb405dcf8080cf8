package extract

import (
	"archive/zip"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slidePartPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// PPTXExtractor reads PowerPoint presentations slide by slide, prefixing each
// slide's text with its number.
type PPTXExtractor struct{}

func NewPPTXExtractor() PPTXExtractor {
	return PPTXExtractor{}
}

func (e PPTXExtractor) Text(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening pptx: %w", err)
	}
	defer archive.Close()

	slides := slidePartNames(archive)
	if len(slides) == 0 {
		return "", nil
	}

	var content []string
	for i, name := range slides {
		part, err := readZipPart(archive, name)
		if err != nil {
			return "", fmt.Errorf("reading pptx: %w", err)
		}

		text, err := collectElementText(part, "t", "p")
		if err != nil {
			return "", fmt.Errorf("reading pptx: %w", err)
		}

		if text = cleanLines(text); text != "" {
			content = append(content, fmt.Sprintf("[Slide %d]\n%s", i+1, text))
		}
	}

	return strings.Join(content, "\n"), nil
}

func (e PPTXExtractor) Metadata(path string) (Metadata, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("opening pptx: %w", err)
	}
	defer archive.Close()

	metadata, err := readCoreProperties(archive)
	if err != nil {
		return Metadata{}, err
	}
	metadata.SlideCount = len(slidePartNames(archive))

	return metadata, nil
}

func slidePartNames(archive *zip.ReadCloser) []string {
	type slide struct {
		name string
		num  int
	}

	var slides []slide
	for _, file := range archive.File {
		if matches := slidePartPattern.FindStringSubmatch(file.Name); matches != nil {
			num, _ := strconv.Atoi(matches[1])
			slides = append(slides, slide{name: file.Name, num: num})
		}
	}

	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	names := make([]string, len(slides))
	for i, s := range slides {
		names[i] = s.name
	}
	return names
}
