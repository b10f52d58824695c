package config

import (
	"os"
	"path/filepath"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "custom values",
			config: Config{
				Gemini:  GeminiConfig{Model: "gemini-2.5-pro"},
				Extract: ExtractConfig{Field: "text", OutputExt: ".transcript"},
				Logging: LoggingConfig{Level: "DEBUG"},
			},
			wantErr: false,
		},
		{
			name:    "output ext without dot",
			config:  Config{Extract: ExtractConfig{OutputExt: "txt"}},
			wantErr: true,
		},
		{
			name:    "output ext clobbers input",
			config:  Config{Extract: ExtractConfig{OutputExt: ".JSON"}},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{Logging: LoggingConfig{Level: "verbose"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Gemini.Model != DefaultModel {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, DefaultModel)
	}
	if cfg.Gemini.EnableThinking {
		t.Error("EnableThinking = true, want false")
	}
	if cfg.Prompt.Instruction != DefaultInstruction {
		t.Errorf("Instruction = %v, want %v", cfg.Prompt.Instruction, DefaultInstruction)
	}
	if cfg.Prompt.Banner != DefaultBanner {
		t.Errorf("Banner = %v, want %v", cfg.Prompt.Banner, DefaultBanner)
	}
	if cfg.Extract.Field != DefaultField {
		t.Errorf("Field = %v, want %v", cfg.Extract.Field, DefaultField)
	}
	if got := cfg.Extract.JoinSeparator(); got != DefaultSeparator {
		t.Errorf("JoinSeparator() = %q, want %q", got, DefaultSeparator)
	}
	if cfg.Extract.OutputExt != DefaultOutputExt {
		t.Errorf("OutputExt = %v, want %v", cfg.Extract.OutputExt, DefaultOutputExt)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Level = %v, want %v", cfg.Logging.Level, DefaultLogLevel)
	}
}

func TestJoinSeparator(t *testing.T) {
	tests := []struct {
		name string
		cfg  ExtractConfig
		want string
	}{
		{"unset", ExtractConfig{}, ", "},
		{"explicit empty", ExtractConfig{Separator: strPtr("")}, ""},
		{"newline", ExtractConfig{Separator: strPtr("\n")}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.JoinSeparator(); got != tt.want {
				t.Errorf("JoinSeparator() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
gemini:
  model: "gemini-2.5-pro"
  enable_thinking: true

prompt:
  instruction: "tl;dr:"

extract:
  field: "text"
  separator: " | "

logging:
  level: "debug"
`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, "gemini-2.5-pro")
	}
	if !cfg.Gemini.EnableThinking {
		t.Error("EnableThinking = false, want true")
	}
	if cfg.Prompt.Instruction != "tl;dr:" {
		t.Errorf("Instruction = %v, want %v", cfg.Prompt.Instruction, "tl;dr:")
	}
	if cfg.Prompt.Banner != DefaultBanner {
		t.Errorf("Banner = %v, want %v", cfg.Prompt.Banner, DefaultBanner)
	}
	if cfg.Extract.Field != "text" {
		t.Errorf("Field = %v, want %v", cfg.Extract.Field, "text")
	}
	if got := cfg.Extract.JoinSeparator(); got != " | " {
		t.Errorf("JoinSeparator() = %q, want %q", got, " | ")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an unknown log level")
	}
}
