// Package am loads the hsuno configuration: generation naming knobs and
// logging, merged from system, user and project TOML files plus HSUNO_*
// environment variables.
package am

import (
	"fmt"

	"github.com/teranos/hsuno/typegen"
)

// Config represents the hsuno configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate" toml:"generate" yaml:"generate" json:"generate"`
	Log      LogConfig      `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// GenerateConfig configures where and how bindings are generated
type GenerateConfig struct {
	OutputRoot string `mapstructure:"output_root" toml:"output_root" yaml:"output_root" json:"output_root"`

	SymbolPrefix      string `mapstructure:"symbol_prefix" toml:"symbol_prefix" yaml:"symbol_prefix" json:"symbol_prefix"`
	HeaderGuardPrefix string `mapstructure:"header_guard_prefix" toml:"header_guard_prefix" yaml:"header_guard_prefix" json:"header_guard_prefix"`
	HeaderGuardSuffix string `mapstructure:"header_guard_suffix" toml:"header_guard_suffix" yaml:"header_guard_suffix" json:"header_guard_suffix"`

	HeaderExtension  string `mapstructure:"header_extension" toml:"header_extension" yaml:"header_extension" json:"header_extension"`
	SourceExtension  string `mapstructure:"source_extension" toml:"source_extension" yaml:"source_extension" json:"source_extension"`
	BindingExtension string `mapstructure:"binding_extension" toml:"binding_extension" yaml:"binding_extension" json:"binding_extension"`

	// NativeContext is the C++ expression singletons are fetched from
	NativeContext string `mapstructure:"native_context" toml:"native_context" yaml:"native_context" json:"native_context"`

	// Workers bounds concurrent entity emission; 0 = one per CPU
	Workers int `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"`
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
}

// TypegenOptions returns the naming options generation runs with
func (c *Config) TypegenOptions() typegen.Options {
	return typegen.Options{
		SymbolPrefix:      c.Generate.SymbolPrefix,
		HeaderGuardPrefix: c.Generate.HeaderGuardPrefix,
		HeaderGuardSuffix: c.Generate.HeaderGuardSuffix,
		HeaderExtension:   c.Generate.HeaderExtension,
		SourceExtension:   c.Generate.SourceExtension,
		BindingExtension:  c.Generate.BindingExtension,
		NativeContext:     c.Generate.NativeContext,
	}
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Generate: {OutputRoot: %s, SymbolPrefix: %s, Workers: %d}, Log: {JSON: %t}}",
		c.Generate.OutputRoot, c.Generate.SymbolPrefix, c.Generate.Workers, c.Log.JSON)
}
