package fileclassify

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the optional fileclassify.toml configuration. A missing file
// yields the defaults.
type Config struct {
	LLM      LLMConfig      `toml:"llm"`
	Classify ClassifyConfig `toml:"classify"`
	Bundle   BundleConfig   `toml:"bundle"`
}

type LLMConfig struct {
	BaseURL string   `toml:"base_url"`
	Model   string   `toml:"model"`
	Timeout duration `toml:"timeout"`
}

type ClassifyConfig struct {
	Rule       string `toml:"rule"`
	Workers    int    `toml:"workers"`
	MaxSnippet int    `toml:"max_snippet"`
}

type BundleConfig struct {
	Manifest   string `toml:"manifest"`
	EntryPoint string `toml:"entrypoint"`
	Name       string `toml:"name"`
	OutputDir  string `toml:"output_dir"`
	Windowed   bool   `toml:"windowed"`
	OneFile    bool   `toml:"onefile"`
	Pip        string `toml:"pip"`
	Bundler    string `toml:"bundler"`
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = parsed
	return nil
}

func defaultConfig() Config {
	return Config{
		LLM: LLMConfig{
			BaseURL: "http://127.0.0.1:8080",
			Timeout: duration{2 * time.Minute},
		},
		Classify: ClassifyConfig{
			Rule:       "Category >> Year",
			Workers:    4,
			MaxSnippet: 500,
		},
		Bundle: BundleConfig{
			Manifest:   "requirements.txt",
			EntryPoint: "src/main.py",
			Name:       "FileClassify",
			OutputDir:  "dist",
			Windowed:   true,
			OneFile:    true,
			Pip:        "pip",
			Bundler:    "pyinstaller",
		},
	}
}

// LoadConfig reads the configuration at path, applying defaults for anything
// unset. A nonexistent file is not an error.
func LoadConfig(path string) (Config, error) {
	config := defaultConfig()

	_, err := toml.DecodeFile(path, &config)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}

	return config, nil
}
