// Package config loads the formatter's TOML configuration: the
// reconstruction settings (the literal strings used for newlines,
// indentation, and continuation) plus the file encoding and the maximum
// line length the line formatter targets. It follows the same
// load-then-flag-override pattern the teacher uses for its own TOML-backed configuration.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ReconstructionSettings are the three literal strings the reconstructor
// multiplies by a token's NewlinesBefore/IndentationsBefore/
// ContinuationsBefore counts to produce its leading whitespace.
type ReconstructionSettings struct {
	Newline      string `toml:"newline"`
	IndentUnit   string `toml:"indent_unit"`
	Continuation string `toml:"continuation_unit"`
}

// DefaultReconstructionSettings matches the default house style: LF
// newlines, two-space indentation, two-space continuation.
func DefaultReconstructionSettings() ReconstructionSettings {
	return ReconstructionSettings{Newline: "\n", IndentUnit: "  ", Continuation: "  "}
}

// FormattingConfig is the top-level configuration document.
type FormattingConfig struct {
	Reconstruction ReconstructionSettings `toml:"reconstruction"`
	Encoding       string                 `toml:"encoding"`
	MaxLineLength  int                    `toml:"max_line_length"`
}

// DefaultFormattingConfig is used when no config file is given.
func DefaultFormattingConfig() FormattingConfig {
	return FormattingConfig{
		Reconstruction: DefaultReconstructionSettings(),
		Encoding:       "windows-1252",
		MaxLineLength:  120,
	}
}

// Load parses a TOML configuration file at path, falling back to
// DefaultFormattingConfig for any field the file doesn't set.
func Load(path string) (FormattingConfig, error) {
	cfg := DefaultFormattingConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "loading config %q", path)
	}
	return cfg, nil
}
