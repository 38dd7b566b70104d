package am

import (
	"regexp"
	"strings"

	"github.com/teranos/hsuno/errors"
)

var (
	// symbolPrefixPattern allows anything that keeps the full symbol a C identifier
	symbolPrefixPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	// guardAffixPattern allows an empty affix or identifier characters
	guardAffixPattern = regexp.MustCompile(`^[A-Za-z0-9_]*$`)
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	g := c.Generate

	if g.OutputRoot == "" {
		return errors.New("generate.output_root cannot be empty")
	}

	if !symbolPrefixPattern.MatchString(g.SymbolPrefix) {
		return errors.WithHint(
			errors.Newf("generate.symbol_prefix %q is not a valid C identifier prefix", g.SymbolPrefix),
			`use letters, digits and underscores, e.g. "hsuno_"`)
	}
	if !guardAffixPattern.MatchString(g.HeaderGuardPrefix) {
		return errors.Newf("generate.header_guard_prefix %q may only contain letters, digits and underscores", g.HeaderGuardPrefix)
	}
	if !guardAffixPattern.MatchString(g.HeaderGuardSuffix) {
		return errors.Newf("generate.header_guard_suffix %q may only contain letters, digits and underscores", g.HeaderGuardSuffix)
	}
	if g.HeaderGuardPrefix == "" && g.HeaderGuardSuffix == "" {
		// a bare guard such as A_B_WIDGET collides with the UNO header's own guard
		return errors.New("generate.header_guard_prefix and generate.header_guard_suffix cannot both be empty")
	}

	exts := map[string]string{
		"generate.header_extension":  g.HeaderExtension,
		"generate.source_extension":  g.SourceExtension,
		"generate.binding_extension": g.BindingExtension,
	}
	seen := make(map[string]string)
	for _, key := range []string{"generate.header_extension", "generate.source_extension", "generate.binding_extension"} {
		ext := exts[key]
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\`) {
			return errors.Newf("%s must look like \".ext\", got %q", key, ext)
		}
		if other, dup := seen[ext]; dup {
			return errors.Newf("%s and %s are both %q", other, key, ext)
		}
		seen[ext] = key
	}

	if strings.TrimSpace(g.NativeContext) == "" {
		return errors.New("generate.native_context cannot be empty")
	}

	// 0 = one worker per CPU, negative = invalid
	if g.Workers < 0 {
		return errors.Newf("generate.workers must be >= 0, got %d", g.Workers)
	}

	return nil
}
