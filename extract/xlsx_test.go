package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fileclassify/fileclassify/extract"
	"github.com/sclevine/spec"
	"github.com/xuri/excelize/v2"

	. "github.com/onsi/gomega"
)

func testXLSXExtractor(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		dir       string
		extractor extract.XLSXExtractor
	)

	it.Before(func() {
		var err error
		dir, err = os.MkdirTemp("", "xlsx")
		Expect(err).NotTo(HaveOccurred())

		extractor = extract.NewXLSXExtractor()
	})

	it.After(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	context("Text", func() {
		context("with an xlsx workbook", func() {
			var path string

			it.Before(func() {
				workbook := excelize.NewFile()
				Expect(workbook.SetCellValue("Sheet1", "A1", "Item")).To(Succeed())
				Expect(workbook.SetCellValue("Sheet1", "B1", "Amount")).To(Succeed())
				Expect(workbook.SetCellValue("Sheet1", "A2", "Office supplies")).To(Succeed())
				Expect(workbook.SetCellValue("Sheet1", "B2", 125)).To(Succeed())

				path = filepath.Join(dir, "expenses.xlsx")
				Expect(workbook.SaveAs(path)).To(Succeed())
				Expect(workbook.Close()).To(Succeed())
			})

			it("reads each sheet with its name as a header", func() {
				text, err := extractor.Text(path)
				Expect(err).NotTo(HaveOccurred())
				Expect(text).To(Equal("[Sheet: Sheet1]\nItem\tAmount\nOffice supplies\t125"))
			})
		})

		context("with a csv file", func() {
			var path string

			it.Before(func() {
				path = filepath.Join(dir, "expenses.csv")
				Expect(os.WriteFile(path, []byte("Item,Amount\nOffice supplies,125\n"), 0600)).To(Succeed())
			})

			it("reads rows as tab-joined lines", func() {
				text, err := extractor.Text(path)
				Expect(err).NotTo(HaveOccurred())
				Expect(text).To(Equal("Item\tAmount\nOffice supplies\t125"))
			})
		})

		context("failure cases", func() {
			context("when the workbook cannot be opened", func() {
				it("returns an error", func() {
					broken := filepath.Join(dir, "broken.xlsx")
					Expect(os.WriteFile(broken, []byte("not a workbook"), 0600)).To(Succeed())

					_, err := extractor.Text(broken)
					Expect(err).To(MatchError(ContainSubstring("opening workbook")))
				})
			})

			context("when the csv is malformed", func() {
				it("returns an error", func() {
					broken := filepath.Join(dir, "broken.csv")
					Expect(os.WriteFile(broken, []byte("a,\"b\nc"), 0600)).To(Succeed())

					_, err := extractor.Text(broken)
					Expect(err).To(MatchError(ContainSubstring("reading csv")))
				})
			})
		})
	})

	context("Metadata", func() {
		it("lists the sheet names", func() {
			workbook := excelize.NewFile()
			_, err := workbook.NewSheet("Budget")
			Expect(err).NotTo(HaveOccurred())

			path := filepath.Join(dir, "book.xlsx")
			Expect(workbook.SaveAs(path)).To(Succeed())
			Expect(workbook.Close()).To(Succeed())

			metadata, err := extractor.Metadata(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(metadata.SheetNames).To(ConsistOf("Sheet1", "Budget"))
		})
	})
}
