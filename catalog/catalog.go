// SPDX-License-Identifier: MIT

// Package catalog reads and writes enum declaration files.
//
// A catalog lists contracts and types with their constants in declaration
// order. YAML and JSON files share one parser; TOML is also accepted but has
// no null, so null payloads need YAML or JSON.
//
//	contracts: [Printable]
//	types:
//	  - name: Color
//	    implements: [Printable]
//	    constants:
//	      RED: red
//	      NONE: null
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/enumkit/enum"
	"github.com/ManuGH/enumkit/internal/log"
)

var (
	// ErrUnsupportedFormat classifies files whose extension names no known format.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrInvalidCatalog classifies malformed catalogs and unresolvable references.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Format names a catalog encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Catalog is a set of contract and type declarations.
type Catalog struct {
	Contracts []string
	Types     []TypeSpec
}

// TypeSpec declares one enum type.
type TypeSpec struct {
	Name       string
	Extends    string
	Implements []string
	Constants  []enum.Constant
}

// Parse decodes data in format f.
func Parse(data []byte, f Format) (*Catalog, error) {
	switch f {
	case FormatYAML, FormatJSON:
		return parseYAML(data)
	case FormatTOML:
		return parseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// LoadFile reads and parses the catalog at path, picking the format from its extension.
func LoadFile(path string) (*Catalog, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger := log.WithComponent("catalog")
	logger.Debug().
		Str(log.FieldPath, path).
		Str(log.FieldFormat, string(f)).
		Int(log.FieldCount, len(c.Types)).
		Msg("catalog loaded")
	return c, nil
}

// Declare defines the catalog's contracts, then its types in file order, in r.
// Extends and implements references resolve against r, so parents must come
// first or already be declared there.
func (c *Catalog) Declare(r *enum.Registry) ([]*enum.Type, error) {
	for _, name := range c.Contracts {
		if _, err := r.DefineContract(name); err != nil {
			return nil, err
		}
	}

	types := make([]*enum.Type, 0, len(c.Types))
	for _, ts := range c.Types {
		b := enum.Declare(ts.Name).In(r)
		if ts.Extends != "" {
			parent, ok := r.Lookup(ts.Extends)
			if !ok {
				return nil, fmt.Errorf("%w: %s extends undeclared type %s", ErrInvalidCatalog, ts.Name, ts.Extends)
			}
			b.Extends(parent)
		}
		for _, name := range ts.Implements {
			ct, ok := r.Contract(name)
			if !ok {
				return nil, fmt.Errorf("%w: %s implements undeclared contract %s", ErrInvalidCatalog, ts.Name, name)
			}
			b.Implements(ct)
		}
		for _, k := range ts.Constants {
			b.Const(k.Key, k.Value)
		}

		t, err := b.Build()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
