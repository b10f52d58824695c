package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel       = "gemini-2.5-flash"
	DefaultInstruction = "summarize the following text in one paragraph:"
	DefaultBanner      = "summary of content follows:"
	DefaultField       = "content"
	DefaultSeparator   = ", "
	DefaultOutputExt   = ".txt"
	DefaultLogLevel    = "info"
)

type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Prompt  PromptConfig  `yaml:"prompt"`
	Extract ExtractConfig `yaml:"extract"`
	Logging LoggingConfig `yaml:"logging"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
	// BaseURL overrides the Gemini API endpoint, mostly for proxies.
	BaseURL        string `yaml:"base_url"`
	EnableThinking bool   `yaml:"enable_thinking"`
}

type PromptConfig struct {
	Instruction string `yaml:"instruction"`
	Banner      string `yaml:"banner"`
}

type ExtractConfig struct {
	Field     string  `yaml:"field"`
	Separator *string `yaml:"separator"`
	OutputExt string  `yaml:"output_ext"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	// Validate only fails on explicitly bad values; an empty config has none.
	_ = cfg.Validate()
	return cfg
}

// JoinSeparator returns the configured join separator.
func (c ExtractConfig) JoinSeparator() string {
	if c.Separator == nil {
		return DefaultSeparator
	}
	return *c.Separator
}

func (c *Config) Validate() error {
	if c.Extract.OutputExt != "" && !strings.HasPrefix(c.Extract.OutputExt, ".") {
		return fmt.Errorf("extract.output_ext must start with '.'")
	}
	if strings.EqualFold(c.Extract.OutputExt, ".json") {
		return fmt.Errorf("extract.output_ext must differ from the input extension")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultModel
	}
	if c.Prompt.Instruction == "" {
		c.Prompt.Instruction = DefaultInstruction
	}
	if c.Prompt.Banner == "" {
		c.Prompt.Banner = DefaultBanner
	}
	if c.Extract.Field == "" {
		c.Extract.Field = DefaultField
	}
	if c.Extract.OutputExt == "" {
		c.Extract.OutputExt = DefaultOutputExt
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	return nil
}
