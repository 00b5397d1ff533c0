package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the effective sortdl configuration
type Config struct {
	Sweep    Sweep    `koanf:"sweep" toml:"sweep"`
	Relocate Relocate `koanf:"relocate" toml:"relocate"`
	Logging  Logging  `koanf:"logging" toml:"logging"`
	Output   Output   `koanf:"output" toml:"output"`
}

// Sweep holds settings for a single pass over the target directory
type Sweep struct {
	Target       string `koanf:"target" toml:"target"`
	DryRun       bool   `koanf:"dry_run" toml:"dry_run"`
	MissingDirOK bool   `koanf:"missing_dir_ok" toml:"missing_dir_ok"`
}

// Relocate holds copy-then-delete settings
type Relocate struct {
	Verify    bool     `koanf:"verify" toml:"verify"`
	MaxSuffix int      `koanf:"max_suffix" toml:"max_suffix"`
	DirMode   FileMode `koanf:"dir_mode" toml:"dir_mode"`
}

// Logging holds log sink settings
type Logging struct {
	File bool `koanf:"file" toml:"file"`
}

// Output holds report rendering settings
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// FileMode is an os.FileMode written as an octal string in TOML
type FileMode os.FileMode

// Perm returns the mode as os.FileMode
func (m FileMode) Perm() os.FileMode {
	return os.FileMode(m).Perm()
}

// MarshalText renders the mode as "0755"
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%04o", uint32(m.Perm()))), nil
}

// UnmarshalText parses an octal mode string
func (m *FileMode) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return fmt.Errorf("invalid file mode %q: %w", text, err)
	}
	*m = FileMode(v)
	return nil
}
