package am

import (
	"github.com/spf13/viper"

	"github.com/teranos/hsuno/typegen"
)

// DefaultOutputRoot is where generated files go when nothing is configured
const DefaultOutputRoot = "gen"

// DefaultDirPermissions is used for directories hsuno creates
const DefaultDirPermissions = 0755

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	opts := typegen.DefaultOptions()

	v.SetDefault("generate.output_root", DefaultOutputRoot)
	v.SetDefault("generate.symbol_prefix", opts.SymbolPrefix)
	v.SetDefault("generate.header_guard_prefix", opts.HeaderGuardPrefix)
	v.SetDefault("generate.header_guard_suffix", opts.HeaderGuardSuffix)
	v.SetDefault("generate.header_extension", opts.HeaderExtension)
	v.SetDefault("generate.source_extension", opts.SourceExtension)
	v.SetDefault("generate.binding_extension", opts.BindingExtension)
	v.SetDefault("generate.native_context", opts.NativeContext)
	v.SetDefault("generate.workers", 0) // one per CPU

	v.SetDefault("log.json", false)
}

// Defaults returns the configuration with only built-in defaults applied
func Defaults() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always decode
		panic(err)
	}
	return cfg
}
