package unoidl

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/teranos/hsuno/errors"
	"github.com/teranos/hsuno/logger"
)

// SupportedSchemaVersions is the semver constraint schema files must satisfy.
const SupportedSchemaVersions = "^1.0"

// Schema is a decoded schema file.
type Schema struct {
	// Source is the path the schema was read from
	Source string

	// Version is the schema format version declared by the file
	Version *semver.Version

	// Entities in file order
	Entities []*Entity
}

// schemaFile mirrors the on-disk layout for both YAML and TOML:
//
//	version: "1.0"
//	entities:
//	  - name: Widget
//	    module: a.b
//	    kind: interface
//	    methods:
//	      - name: getCount
//	        returns: long
type schemaFile struct {
	Version  string       `yaml:"version" toml:"version"`
	Entities []entityFile `yaml:"entities" toml:"entities"`
}

type entityFile struct {
	Name    string       `yaml:"name" toml:"name"`
	Module  string       `yaml:"module" toml:"module"`
	Kind    string       `yaml:"kind" toml:"kind"`
	Methods []methodFile `yaml:"methods" toml:"methods"`
	Members []memberFile `yaml:"members" toml:"members"`
	Base    string       `yaml:"base" toml:"base"`
}

type methodFile struct {
	Name       string      `yaml:"name" toml:"name"`
	Returns    string      `yaml:"returns" toml:"returns"`
	Parameters []paramFile `yaml:"parameters" toml:"parameters"`
}

type paramFile struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

type memberFile struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

// LoadSchema reads a schema file. The format is chosen by extension:
// .yaml/.yml are decoded with yaml.v3, .toml with BurntSushi/toml.
func LoadSchema(fs afero.Fs, path string) (*Schema, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema %s", path)
	}

	var raw schemaFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrapf(errors.Wrap(errors.ErrInvalidSchema, err.Error()), "failed to decode %s", path)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &raw)
		if err != nil {
			return nil, errors.Wrapf(errors.Wrap(errors.ErrInvalidSchema, err.Error()), "failed to decode %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			logger.Warnw("Schema has unknown keys", logger.FieldSchema, path, "keys", keys)
		}
	default:
		return nil, errors.WithHint(
			errors.NewInvalidSchemaError("unsupported schema format %q", filepath.Ext(path)),
			"use a .yaml, .yml or .toml schema file")
	}

	schema, err := decodeSchema(&raw)
	if err != nil {
		return nil, errors.Wrapf(err, "schema %s", path)
	}
	schema.Source = path
	return schema, nil
}

func decodeSchema(raw *schemaFile) (*Schema, error) {
	if raw.Version == "" {
		return nil, errors.WithHint(
			errors.NewInvalidSchemaError("missing version"),
			`add version: "1.0" at the top of the schema`)
	}
	version, err := semver.NewVersion(raw.Version)
	if err != nil {
		return nil, errors.NewInvalidSchemaError("invalid version %q: %v", raw.Version, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchemaVersions)
	if err != nil {
		return nil, errors.Wrap(err, "invalid schema version constraint")
	}
	if !constraint.Check(version) {
		return nil, errors.NewInvalidSchemaError("schema version %s does not satisfy %s", version, SupportedSchemaVersions)
	}

	schema := &Schema{Version: version}
	for i := range raw.Entities {
		e, err := decodeEntity(&raw.Entities[i])
		if err != nil {
			return nil, err
		}
		schema.Entities = append(schema.Entities, e)
	}
	return schema, nil
}

func decodeEntity(raw *entityFile) (*Entity, error) {
	module, err := ParseModulePath(raw.Module)
	if err != nil {
		return nil, err
	}
	kind, err := ParseKind(raw.Kind)
	if err != nil {
		return nil, errors.Wrapf(err, "entity %q", raw.Name)
	}

	e := &Entity{Name: raw.Name, Module: module, Kind: kind}
	switch kind {
	case KindInterface:
		e.Interface = &InterfaceEntity{}
		for _, m := range raw.Methods {
			method := Method{Name: m.Name, ReturnType: Void}
			if m.Returns != "" {
				method.ReturnType = T(m.Returns)
			}
			for _, p := range m.Parameters {
				method.Parameters = append(method.Parameters, Parameter{Name: p.Name, Type: T(p.Type)})
			}
			e.Interface.Methods = append(e.Interface.Methods, method)
		}
	case KindException:
		e.Exception = &ExceptionEntity{}
		for _, m := range raw.Members {
			e.Exception.Members = append(e.Exception.Members, Member{Name: m.Name, Type: T(m.Type)})
		}
	case KindInterfaceSingleton, KindServiceSingleton:
		e.Singleton = &SingletonEntity{Base: raw.Base}
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// LoadSchemas reads every schema and indexes all of their entities together,
// so that a singleton in one file can name an interface from another.
func LoadSchemas(fs afero.Fs, paths ...string) ([]*Schema, *Index, error) {
	var schemas []*Schema
	var all []*Entity
	for _, path := range paths {
		s, err := LoadSchema(fs, path)
		if err != nil {
			return nil, nil, err
		}
		schemas = append(schemas, s)
		all = append(all, s.Entities...)
	}
	idx, err := NewIndex(all...)
	if err != nil {
		return nil, nil, err
	}
	return schemas, idx, nil
}
