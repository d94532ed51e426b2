package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// withConfigHome points XDG_CONFIG_HOME at a temp directory for the test.
func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, had := os.LookupEnv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", dir)
	t.Cleanup(func() {
		if had {
			os.Setenv("XDG_CONFIG_HOME", old)
		} else {
			os.Unsetenv("XDG_CONFIG_HOME")
		}
	})
	return dir
}

func writeConfig(t *testing.T, configHome, content string) {
	t.Helper()
	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	withConfigHome(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	home := withConfigHome(t)
	writeConfig(t, home, `
data_dir = "/data/uscode"
top_k = 25
seed = 7
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.DataDir != "/data/uscode" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/data/uscode")
	}
	if cfg.TopK != 25 {
		t.Errorf("TopK = %d, want 25", cfg.TopK)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}

	// Keys absent from the file keep their defaults
	if cfg.CacheTTLDays != DefaultConfig().CacheTTLDays {
		t.Errorf("CacheTTLDays = %d, want default %d", cfg.CacheTTLDays, DefaultConfig().CacheTTLDays)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	home := withConfigHome(t)
	writeConfig(t, home, `top_k = "not a number"`)

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should error on malformed file")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	home := withConfigHome(t)
	writeConfig(t, home, `topk = 5`)

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should error on unknown key")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		outputDir string
		path      string
		want      string
	}{
		{"no output dir", "", "graph.json", "graph.json"},
		{"bare filename", "/out", "graph.json", "/out/graph.json"},
		{"absolute path", "/out", "/tmp/graph.json", "/tmp/graph.json"},
		{"relative with dir", "/out", "results/graph.json", "results/graph.json"},
		{"empty path", "/out", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CLI{Config: Config{OutputDir: tt.outputDir}}
			if got := c.outputPath(tt.path); got != tt.want {
				t.Errorf("outputPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "a", "b", "graph.json")

	if err := ensureDir(path); err != nil {
		t.Fatalf("ensureDir() error: %v", err)
	}
	info, err := os.Stat(filepath.Join(base, "a", "b"))
	if err != nil || !info.IsDir() {
		t.Errorf("ensureDir() did not create parent directory: %v", err)
	}

	// Bare filenames need no directory
	if err := ensureDir("graph.json"); err != nil {
		t.Errorf("ensureDir(bare) error: %v", err)
	}
}
