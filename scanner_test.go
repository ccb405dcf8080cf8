package fileclassify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	fileclassify "github.com/fileclassify/fileclassify"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testScanner(t *testing.T, when spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		root    string
		scanner fileclassify.Scanner
	)

	it.Before(func() {
		var err error
		root, err = os.MkdirTemp("", "scan")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.MkdirAll(filepath.Join(root, "a", "b"), os.ModePerm)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "one.txt"), nil, 0600)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "a", "two.txt"), nil, 0600)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "a", "b", "three.txt"), nil, 0600)).To(Succeed())

		scanner = fileclassify.NewScanner()
	})

	it.After(func() {
		Expect(os.RemoveAll(root)).To(Succeed())
	})

	when("Count", func() {
		it("counts folders and files below the root", func() {
			counts, err := scanner.Count(context.Background(), root)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(fileclassify.Counts{Folders: 2, Files: 3}))
		})

		when("the context is cancelled", func() {
			it("returns the context error", func() {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				_, err := scanner.Count(ctx, root)
				Expect(err).To(MatchError(ContainSubstring("context canceled")))
			})
		})

		when("failure cases", func() {
			when("the root does not exist", func() {
				it("returns an error", func() {
					_, err := scanner.Count(context.Background(), "/no/such/dir")
					Expect(err).To(MatchError(ContainSubstring("scanning /no/such/dir")))
				})
			})
		})
	})
}
