// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml"

	"github.com/ManuGH/enumkit/enum"
)

// parseTOML reads the TOML form:
//
//	contracts = ["Printable"]
//
//	[[types]]
//	name = "Color"
//	implements = ["Printable"]
//
//	  [types.constants]
//	  RED = "red"
//
// Tables are unordered, so constants are ordered by their position in the file.
func parseTOML(data []byte) (*Catalog, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{}
	for _, key := range tree.Keys() {
		switch key {
		case "contracts":
			names, err := stringList(tree, key)
			if err != nil {
				return nil, err
			}
			c.Contracts = names
		case "types":
			tables, ok := tree.Get(key).([]*toml.Tree)
			if !ok {
				return nil, tomlError(tree, key, "types must be an array of tables")
			}
			for _, tt := range tables {
				ts, err := parseTypeTable(tt)
				if err != nil {
					return nil, err
				}
				c.Types = append(c.Types, ts)
			}
		default:
			return nil, tomlError(tree, key, fmt.Sprintf("unknown field %q", key))
		}
	}

	return c, nil
}

func parseTypeTable(tt *toml.Tree) (TypeSpec, error) {
	var ts TypeSpec
	for _, key := range tt.Keys() {
		switch key {
		case "name", "extends":
			s, ok := tt.Get(key).(string)
			if !ok {
				return ts, tomlError(tt, key, key+" must be a string")
			}
			if key == "name" {
				ts.Name = s
			} else {
				ts.Extends = s
			}
		case "implements":
			names, err := stringList(tt, key)
			if err != nil {
				return ts, err
			}
			ts.Implements = names
		case "constants":
			consts, ok := tt.Get(key).(*toml.Tree)
			if !ok {
				return ts, tomlError(tt, key, "constants must be a table")
			}
			parsed, err := parseConstants(consts)
			if err != nil {
				return ts, err
			}
			ts.Constants = parsed
		default:
			return ts, tomlError(tt, key, fmt.Sprintf("unknown type field %q", key))
		}
	}

	if ts.Name == "" {
		return ts, fmt.Errorf("%w: line %d: type entry has no name", ErrInvalidCatalog, tt.Position().Line)
	}
	return ts, nil
}

func parseConstants(t *toml.Tree) ([]enum.Constant, error) {
	keys := t.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		pi, pj := t.GetPosition(keys[i]), t.GetPosition(keys[j])
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Col < pj.Col
	})

	out := make([]enum.Constant, 0, len(keys))
	for _, key := range keys {
		var payload any
		switch v := t.Get(key).(type) {
		case string, bool:
			payload = v
		case int64:
			payload = int(v)
		default:
			return nil, tomlError(t, key, fmt.Sprintf("unsupported payload %v (%T)", v, v))
		}
		out = append(out, enum.Constant{Key: key, Value: payload})
	}
	return out, nil
}

func stringList(t *toml.Tree, key string) ([]string, error) {
	switch raw := t.Get(key).(type) {
	case []string:
		return raw, nil
	case []interface{}:
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return nil, tomlError(t, key, key+" must be an array of strings")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, tomlError(t, key, key+" must be an array of strings")
	}
}

func tomlError(t *toml.Tree, key, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidCatalog, t.GetPosition(key).Line, msg)
}
