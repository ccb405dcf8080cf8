package extract_test

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/fileclassify/fileclassify/extract"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

type stubExtractor struct {
	text string
}

func (s stubExtractor) Text(string) (string, error)              { return s.text, nil }
func (s stubExtractor) Metadata(string) (extract.Metadata, error) { return extract.Metadata{}, nil }

func testRegistry(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		registry extract.Registry
	)

	it.Before(func() {
		registry = extract.NewRegistry()
	})

	context("For", func() {
		it("resolves extractors case-insensitively by extension", func() {
			extractor, err := registry.For("/docs/Report.PDF")
			Expect(err).NotTo(HaveOccurred())
			Expect(extractor).To(BeAssignableToTypeOf(extract.PDFExtractor{}))

			extractor, err = registry.For("/docs/notes.txt")
			Expect(err).NotTo(HaveOccurred())
			Expect(extractor).To(BeAssignableToTypeOf(extract.TextExtractor{}))
		})

		context("when the extension is not registered", func() {
			it("returns ErrUnsupported", func() {
				_, err := registry.For("/docs/archive.zip")
				Expect(errors.Is(err, extract.ErrUnsupported)).To(BeTrue())
				Expect(err).To(MatchError(ContainSubstring(`".zip"`)))
			})
		})
	})

	context("Text", func() {
		it("dispatches to the registered extractor", func() {
			dir, err := os.MkdirTemp("", "registry")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(dir)

			path := filepath.Join(dir, "notes.md")
			Expect(os.WriteFile(path, []byte("# heading"), 0600)).To(Succeed())

			text, err := registry.Text(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("# heading"))
		})
	})

	context("Register", func() {
		it("adds an extractor for a new extension", func() {
			registry.Register(".LOG", stubExtractor{text: "log content"})

			text, err := registry.Text("/var/app.log")
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("log content"))
		})
	})

	context("SupportedExtensions", func() {
		it("lists extensions in sorted order", func() {
			exts := registry.SupportedExtensions()
			Expect(exts).To(ContainElements(".csv", ".docx", ".pdf", ".pptx", ".txt", ".xlsx"))
			Expect(sort.StringsAreSorted(exts)).To(BeTrue())
		})
	})

	context("Snippet", func() {
		it("returns short text unchanged", func() {
			Expect(extract.Snippet("short", 10)).To(Equal("short"))
		})

		it("truncates long text with an ellipsis", func() {
			Expect(extract.Snippet("abcdefghij", 4)).To(Equal("abcd..."))
		})

		it("truncates on rune boundaries", func() {
			Expect(extract.Snippet("年度财务报告", 2)).To(Equal("年度..."))
		})
	})
}
