package mim

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// defaultMaxKeyseqLength is the longest-match bound applied when a config
// doesn't set MaxKeyseqLength explicitly.
const defaultMaxKeyseqLength = 10

// EngineConfig holds the construction-time knobs that do not affect the
// document or runtime error-handling semantics, only engine constants and
// diagnostics. It is never backed by a file; TOML blobs are decoded from
// an in-memory string only.
type EngineConfig struct {
	// MaxKeyseqLength bounds how many leading input characters the
	// matcher ever tries against a KeyseqTable. Default 10.
	MaxKeyseqLength int

	// NormalizeOutput, when true (the default), passes committed text
	// through Unicode NFC normalization exactly once per commit.
	NormalizeOutput bool

	// Logger receives load-time and runtime diagnostics. Defaults to
	// DiscardLogger.
	Logger Logger
}

// DefaultEngineConfig returns the zero-configuration defaults: a 10
// character longest-match bound, NFC normalization on, and no logging.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxKeyseqLength: defaultMaxKeyseqLength,
		NormalizeOutput: true,
		Logger:          DiscardLogger{},
	}
}

// tomlConfig is the on-disk (in-memory, really) shape decoded from a TOML
// blob; it is translated into EngineConfig after decoding so that the
// richer Logger field never needs to round-trip through TOML itself.
type tomlConfig struct {
	MaxKeyseqLength int    `toml:"max_keyseq_length"`
	NormalizeOutput *bool  `toml:"normalize_output"`
	LogLevel        string `toml:"log_level"`
}

// ConfigFromTOML decodes an in-memory TOML blob into an EngineConfig,
// starting from DefaultEngineConfig and overriding only the fields the
// blob sets. It never reads from disk — tomlText is already-loaded text,
// matching the engine's "no files" constraint.
//
// Recognized keys:
//
//	max_keyseq_length = 10
//	normalize_output   = true
//	log_level          = "debug" | "warn" | "" (= disabled)
func ConfigFromTOML(tomlText string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if strings.TrimSpace(tomlText) == "" {
		return cfg, nil
	}

	var parsed tomlConfig
	if _, err := toml.Decode(tomlText, &parsed); err != nil {
		return EngineConfig{}, err
	}

	if parsed.MaxKeyseqLength > 0 {
		cfg.MaxKeyseqLength = parsed.MaxKeyseqLength
	}
	if parsed.NormalizeOutput != nil {
		cfg.NormalizeOutput = *parsed.NormalizeOutput
	}
	if parsed.LogLevel != "" {
		level, err := logrus.ParseLevel(parsed.LogLevel)
		if err != nil {
			return EngineConfig{}, err
		}
		cfg.Logger = NewLogrusLogger(level)
	}

	return cfg, nil
}
