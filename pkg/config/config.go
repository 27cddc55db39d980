// Package config loads optional iconkit settings from a TOML file.
//
// Every key is optional; anything left out keeps its default. A file that
// names an unknown key is rejected so typos do not pass silently.
//
//	output  = "icons"
//	sizes   = [16, 32, 48, 128]
//	font    = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
//	preview = false
//
//	[colors]
//	document = "#4A90D9"
//	page     = "#FFFFFF"
//	label    = "#4A90D9"
//	arrow    = "#2ECC71"
package config

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/save2md/iconkit/pkg/errors"
	"github.com/save2md/iconkit/pkg/icon"
)

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "icons"

// Config holds iconkit settings.
type Config struct {
	Output  string `toml:"output"`
	Sizes   []int  `toml:"sizes"`
	Font    string `toml:"font"`
	Preview bool   `toml:"preview"`
	Colors  Colors `toml:"colors"`
}

// Colors holds hex color strings for each icon part.
type Colors struct {
	Document string `toml:"document"`
	Page     string `toml:"page"`
	Label    string `toml:"label"`
	Arrow    string `toml:"arrow"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output: DefaultOutput,
		Sizes:  append([]int(nil), icon.DefaultSizes...),
		Colors: Colors{
			Document: icon.DefaultDocument,
			Page:     icon.DefaultPage,
			Label:    icon.DefaultLabel,
			Arrow:    icon.DefaultArrow,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, colors and the output directory.
func (c Config) Validate() error {
	if err := errors.ValidateOutputDir(c.Output); err != nil {
		return err
	}
	if len(c.Sizes) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one icon size is required")
	}
	for _, size := range c.Sizes {
		if _, err := icon.NewSpec(size); err != nil {
			return err
		}
	}
	_, err := c.Palette()
	return err
}

// Palette parses the configured colors.
func (c Config) Palette() (icon.Palette, error) {
	return icon.ParsePalette(c.Colors.Document, c.Colors.Page, c.Colors.Label, c.Colors.Arrow)
}
