package fileclassify_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	fileclassify "github.com/fileclassify/fileclassify"
	"github.com/sclevine/spec"

	. "github.com/onsi/gomega"
)

func testConfig(t *testing.T, context spec.G, it spec.S) {
	var (
		Expect = NewWithT(t).Expect

		dir  string
		path string
	)

	it.Before(func() {
		var err error
		dir, err = os.MkdirTemp("", "config")
		Expect(err).NotTo(HaveOccurred())

		path = filepath.Join(dir, "fileclassify.toml")
	})

	it.After(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	context("LoadConfig", func() {
		it("reads settings and applies defaults for the rest", func() {
			err := os.WriteFile(path, []byte(`
[llm]
base_url = "http://localhost:9090"
model = "qwen2.5"
timeout = "30s"

[classify]
rule = "Category [Contract, Invoice] >> Year >> Month"
workers = 8
`), 0600)
			Expect(err).NotTo(HaveOccurred())

			config, err := fileclassify.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(config.LLM.BaseURL).To(Equal("http://localhost:9090"))
			Expect(config.LLM.Model).To(Equal("qwen2.5"))
			Expect(config.LLM.Timeout.Duration).To(Equal(30 * time.Second))

			Expect(config.Classify.Rule).To(Equal("Category [Contract, Invoice] >> Year >> Month"))
			Expect(config.Classify.Workers).To(Equal(8))
			Expect(config.Classify.MaxSnippet).To(Equal(500))

			Expect(config.Bundle.Manifest).To(Equal("requirements.txt"))
			Expect(config.Bundle.EntryPoint).To(Equal("src/main.py"))
			Expect(config.Bundle.Name).To(Equal("FileClassify"))
			Expect(config.Bundle.OutputDir).To(Equal("dist"))
			Expect(config.Bundle.Windowed).To(BeTrue())
			Expect(config.Bundle.OneFile).To(BeTrue())
			Expect(config.Bundle.Pip).To(Equal("pip"))
			Expect(config.Bundle.Bundler).To(Equal("pyinstaller"))
		})

		context("when the file does not exist", func() {
			it("returns the defaults without error", func() {
				config, err := fileclassify.LoadConfig(filepath.Join(dir, "missing.toml"))
				Expect(err).NotTo(HaveOccurred())
				Expect(config.LLM.BaseURL).To(Equal("http://127.0.0.1:8080"))
				Expect(config.LLM.Timeout.Duration).To(Equal(2 * time.Minute))
				Expect(config.Classify.Rule).To(Equal("Category >> Year"))
				Expect(config.Classify.Workers).To(Equal(4))
			})
		})

		context("failure cases", func() {
			context("when the file is malformed", func() {
				it("returns an error", func() {
					Expect(os.WriteFile(path, []byte("%%%"), 0600)).To(Succeed())

					_, err := fileclassify.LoadConfig(path)
					Expect(err).To(MatchError(ContainSubstring("decoding config")))
				})
			})

			context("when a timeout is not a duration", func() {
				it("returns an error", func() {
					Expect(os.WriteFile(path, []byte("[llm]\ntimeout = \"soon\"\n"), 0600)).To(Succeed())

					_, err := fileclassify.LoadConfig(path)
					Expect(err).To(MatchError(ContainSubstring("decoding config")))
				})
			})
		})
	})
}
