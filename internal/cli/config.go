package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the config file.
// Zero values fall back to the defaults in [DefaultConfig].
type Config struct {
	// DataDir is the default directory searched for uscNN.xml release files.
	DataDir string `toml:"data_dir"`

	// OutputDir is prepended to relative output paths when set.
	OutputDir string `toml:"output_dir"`

	// TopK is the default number of citation hubs reported by stats.
	TopK int `toml:"top_k"`

	// Seed is the default seed for the random baseline in compare.
	Seed int64 `toml:"seed"`

	// CacheTTLDays is how long cached graph builds stay valid.
	CacheTTLDays int `toml:"cache_ttl_days"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		DataDir:      ".",
		TopK:         10,
		Seed:         42,
		CacheTTLDays: 30,
	}
}

// LoadConfig reads ~/.config/statutegraph/config.toml and merges it over the
// defaults. A missing file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(dir, "config.toml")

	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// outputPath resolves an output path against the configured output directory.
// Absolute paths and paths with explicit directory components pass through.
func (c *CLI) outputPath(path string) string {
	if path == "" || c.Config.OutputDir == "" {
		return path
	}
	if filepath.IsAbs(path) || filepath.Dir(path) != "." {
		return path
	}
	return filepath.Join(c.Config.OutputDir, path)
}

// ensureDir creates the parent directory of path if it does not exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
