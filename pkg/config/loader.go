package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. SORTDL_SWEEP_DRY_RUN
const EnvPrefix = "SORTDL_"

// Formats accepted by output.format
var validFormats = map[string]bool{"auto": true, "term": true, "text": true, "json": true}

// sections that env overrides may target
var sections = map[string]bool{"sweep": true, "relocate": true, "logging": true, "output": true}

// LoadOptions selects the config sources beyond the embedded defaults
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist
	ConfigFile string

	// DefaultConfigFile is loaded only if present
	DefaultConfigFile string

	// Overrides are dotted keys from command-line flags, applied last
	Overrides map[string]interface{}
}

// Load builds the effective configuration:
// defaults < config file < SORTDL_* env < overrides
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config file
	path, err := configPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	}

	// 3. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				fileModeHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that the decoder cannot
func Validate(cfg *Config) error {
	if cfg.Relocate.MaxSuffix <= 0 {
		return errors.Newf(errors.ErrConfigParse, "relocate.max_suffix must be positive, got %d", cfg.Relocate.MaxSuffix)
	}
	if cfg.Relocate.DirMode.Perm() == 0 {
		return errors.New(errors.ErrConfigParse, "relocate.dir_mode must grant some permission")
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if !validFormats[cfg.Output.Format] {
		return errors.Newf(errors.ErrConfigParse, "output.format must be one of auto, term, text, json; got %q", cfg.Output.Format)
	}
	return nil
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}

func configPath(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}
	if opts.DefaultConfigFile != "" {
		if _, err := os.Stat(opts.DefaultConfigFile); err == nil {
			return opts.DefaultConfigFile, nil
		}
	}
	return "", nil
}

// envKey maps SORTDL_SWEEP_DRY_RUN to sweep.dry_run. Variables outside the
// known sections (SORTDL_STATE_DIR and friends) are dropped.
func envKey(s string) string {
	parts := strings.SplitN(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", 2)
	if len(parts) != 2 || !sections[parts[0]] {
		return ""
	}
	return parts[0] + "." + parts[1]
}

// fileModeHookFunc decodes "0755" style strings into FileMode
func fileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(FileMode(0)) {
			return data, nil
		}
		var m FileMode
		if err := m.UnmarshalText([]byte(data.(string))); err != nil {
			return nil, err
		}
		return m, nil
	}
}
