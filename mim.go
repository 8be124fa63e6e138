// Package mim provides an M17N-style Multilingual Input Method (MIM)
// reader, loader, and conversion engine that can be embedded in Go
// applications.
//
// This package re-exports the public API from the implementation in
// src/. For full documentation, see the implementation package.
//
// Basic usage:
//
//	im := mim.New(documentText)
//	out := im.Convert("amar") // => "আমার" for a Bengali khipro-style MIM
package mim

import (
	impl "github.com/banglakit/mim/src"
)

// Instance is a compiled MIM document ready to convert input text. Only
// SetLogger modifies it after construction; concurrent Convert calls are
// safe, since each Convert call allocates its own editing context.
type Instance = impl.Instance

// EngineConfig holds construction-time engine settings: the longest-match
// bound, output normalization, and the diagnostic logger.
type EngineConfig = impl.EngineConfig

// Logger receives load-time and runtime diagnostics. It never affects
// conversion output.
type Logger = impl.Logger

// DiscardLogger is the default Logger: it drops every message.
type DiscardLogger = impl.DiscardLogger

// New parses and compiles a MIM document with default engine settings.
// It never fails: a malformed document yields an Instance that behaves
// as pass-through for every input.
func New(documentText string) *Instance {
	return impl.New(documentText)
}

// NewWithConfig parses and compiles a MIM document with an explicit
// EngineConfig.
func NewWithConfig(documentText string, cfg EngineConfig) *Instance {
	return impl.NewWithConfig(documentText, cfg)
}

// DefaultEngineConfig returns the zero-configuration defaults used by
// New: a 10-character longest-match bound, NFC output normalization, and
// no logging.
func DefaultEngineConfig() EngineConfig {
	return impl.DefaultEngineConfig()
}

// ConfigFromTOML decodes an in-memory TOML blob (never a file path) into
// an EngineConfig, starting from DefaultEngineConfig and overriding only
// the keys the blob sets.
func ConfigFromTOML(tomlText string) (EngineConfig, error) {
	return impl.ConfigFromTOML(tomlText)
}
