package file

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/smarthomej/release-tools/internal/core/domain"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Format is the encoding of a configuration file.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported config file type %q", domain.ErrInvalidConfig, path)
	}
}

// Defaults returns the embedded configuration.
func Defaults() (*domain.ReleaseConfig, error) {
	cfg := &domain.ReleaseConfig{}
	if err := decode(defaultsTOML, FormatTOML, cfg); err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration at path on top of the defaults and
// validates the result. An empty path returns the defaults.
func Load(path string) (*domain.ReleaseConfig, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		format, err := FormatOf(path)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		if err := decode(data, format, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data in format on top of the defaults and validates it.
func Parse(data []byte, format Format) (*domain.ReleaseConfig, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	if err := decode(data, format, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode unmarshals data into cfg, rejecting unknown keys.
func decode(data []byte, format Format, cfg *domain.ReleaseConfig) error {
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document leaves the defaults untouched
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
	default:
		return fmt.Errorf("%w: unknown format %q", domain.ErrInvalidConfig, format)
	}
	return nil
}
