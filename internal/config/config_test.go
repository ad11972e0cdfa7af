package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestTextExtensionsClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "default", in: DefaultTextExtensions, want: []string{".css", ".js", ".txt", ".json"}},
		{name: "mixed separators", in: "css; .html  js,", want: []string{".css", ".html", ".js"}},
		{name: "dotted", in: ".svg", want: []string{".svg"}},
		{name: "empty", in: " ,; ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{TextExtensions: tt.in}
			if got := cfg.TextExtensionsClean(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TextExtensionsClean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.TextExtensions != DefaultTextExtensions {
		t.Errorf("TextExtensions = %q", cfg.TextExtensions)
	}
	if cfg.DefaultNamespace != DefaultNamespace {
		t.Errorf("DefaultNamespace = %q", cfg.DefaultNamespace)
	}
	if !cfg.Notify() {
		t.Error("NotifyOnSuccess should default to true")
	}
	if cfg.InlinePayloads {
		t.Error("InlinePayloads should default to false")
	}
	if cfg.Retry.Attempts != 10 || cfg.RetryDelay() != time.Second {
		t.Errorf("Retry = %+v", cfg.Retry)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantError: "invalid logging level"},
		{name: "no extensions", mutate: func(c *Config) { c.TextExtensions = ";" }, wantError: "text_extensions"},
		{name: "negative attempts", mutate: func(c *Config) { c.Retry.Attempts = -1 }, wantError: "invalid retry attempts"},
		{name: "bad delay", mutate: func(c *Config) { c.Retry.Delay = "soon" }, wantError: "invalid retry delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantError == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantError)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}
	if cfg.DefaultNamespace != DefaultNamespace {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}

	content := `inline_payloads: true
text_extensions: "css html"
default_namespace: My.Plugins
notify_on_success: false
retry:
  attempts: 3
  delay: 10ms
`
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.InlinePayloads || cfg.DefaultNamespace != "My.Plugins" || cfg.Notify() {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if got := cfg.TextExtensionsClean(); !reflect.DeepEqual(got, []string{".css", ".html"}) {
		t.Errorf("TextExtensionsClean() = %v", got)
	}
	if cfg.Retry.Attempts != 3 || cfg.RetryDelay() != 10*time.Millisecond {
		t.Errorf("Retry = %+v", cfg.Retry)
	}

	if err := os.WriteFile(path, []byte("retry: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed yaml")
	}
}
