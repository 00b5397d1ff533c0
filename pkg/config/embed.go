package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultsContent returns the commented defaults file shipped in the
// binary, suitable as a starting config.toml
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// rawBytesProvider feeds the embedded defaults to koanf
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
