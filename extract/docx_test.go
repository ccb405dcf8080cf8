package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fileclassify/fileclassify/extract"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testDOCXExtractor(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		dir       string
		path      string
		extractor extract.DOCXExtractor
	)

	it.Before(func() {
		var err error
		dir, err = os.MkdirTemp("", "docx")
		Expect(err).NotTo(HaveOccurred())

		path = filepath.Join(dir, "contract.docx")
		writeArchive(t, path, map[string]string{
			"word/document.xml": `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Purchase Contract</w:t></w:r></w:p>
    <w:p><w:r><w:t>Party A: </w:t></w:r><w:r><w:t>Acme Corp</w:t></w:r></w:p>
    <w:p/>
    <w:p><w:r><w:t>签订日期: 2024-03-01</w:t></w:r></w:p>
  </w:body>
</w:document>`,
			"docProps/core.xml": `<?xml version="1.0"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
                   xmlns:dc="http://purl.org/dc/elements/1.1/"
                   xmlns:dcterms="http://purl.org/dc/terms/">
  <dc:title>Purchase Contract</dc:title>
  <dc:creator>legal</dc:creator>
  <dcterms:created>2024-03-01T09:00:00Z</dcterms:created>
</cp:coreProperties>`,
		})

		extractor = extract.NewDOCXExtractor()
	})

	it.After(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	context("Text", func() {
		it("collects paragraph text, one line per paragraph", func() {
			text, err := extractor.Text(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("Purchase Contract\nParty A: Acme Corp\n签订日期: 2024-03-01"))
		})

		context("failure cases", func() {
			context("when the file is not a zip archive", func() {
				it("returns an error", func() {
					broken := filepath.Join(dir, "broken.docx")
					Expect(os.WriteFile(broken, []byte("not a zip"), 0600)).To(Succeed())

					_, err := extractor.Text(broken)
					Expect(err).To(MatchError(ContainSubstring("opening docx")))
				})
			})

			context("when the document part is missing", func() {
				it("returns an error", func() {
					empty := filepath.Join(dir, "empty.docx")
					writeArchive(t, empty, map[string]string{"other.xml": "<x/>"})

					_, err := extractor.Text(empty)
					Expect(err).To(MatchError(ContainSubstring(`archive part "word/document.xml" not found`)))
				})
			})
		})
	})

	context("Metadata", func() {
		it("reads the core properties and counts content", func() {
			metadata, err := extractor.Metadata(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(metadata.Title).To(Equal("Purchase Contract"))
			Expect(metadata.Author).To(Equal("legal"))
			Expect(metadata.Created.IsZero()).To(BeFalse())
			Expect(metadata.ParagraphCount).To(Equal(3))
			Expect(metadata.WordCount).To(Equal(8))
		})

		context("when core properties are absent", func() {
			it("returns counts only", func() {
				plain := filepath.Join(dir, "plain.docx")
				writeArchive(t, plain, map[string]string{
					"word/document.xml": `<w:document xmlns:w="x"><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`,
				})

				metadata, err := extractor.Metadata(plain)
				Expect(err).NotTo(HaveOccurred())
				Expect(metadata.Title).To(BeEmpty())
				Expect(metadata.ParagraphCount).To(Equal(1))
			})
		})
	})
}
