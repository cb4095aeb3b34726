// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"fmt"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/ManuGH/enumkit/enum"
	"github.com/ManuGH/enumkit/internal/log"
)

// parseYAML walks the node tree rather than decoding into maps, so constant
// order and scalar tags survive.
func parseYAML(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{}
	if len(doc.Content) == 0 {
		return c, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(root, "top level must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		switch k.Value {
		case "contracts":
			if err := v.Decode(&c.Contracts); err != nil {
				return nil, nodeError(v, "contracts must be a list of names")
			}
		case "types":
			if v.Kind != yaml.SequenceNode {
				return nil, nodeError(v, "types must be a list")
			}
			for _, item := range v.Content {
				ts, err := parseTypeNode(item)
				if err != nil {
					return nil, err
				}
				c.Types = append(c.Types, ts)
			}
		default:
			return nil, nodeError(k, fmt.Sprintf("unknown field %q", k.Value))
		}
	}
	return c, nil
}

func parseTypeNode(n *yaml.Node) (TypeSpec, error) {
	var ts TypeSpec
	if n.Kind != yaml.MappingNode {
		return ts, nodeError(n, "type entry must be a mapping")
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		switch k.Value {
		case "name":
			ts.Name = v.Value
		case "extends":
			ts.Extends = v.Value
		case "implements":
			if err := v.Decode(&ts.Implements); err != nil {
				return ts, nodeError(v, "implements must be a list of names")
			}
		case "constants":
			if v.Kind != yaml.MappingNode {
				return ts, nodeError(v, "constants must be a mapping")
			}
			for j := 0; j+1 < len(v.Content); j += 2 {
				payload, err := scalarPayload(v.Content[j+1])
				if err != nil {
					return ts, err
				}
				ts.Constants = append(ts.Constants, enum.Constant{Key: v.Content[j].Value, Value: payload})
			}
		default:
			return ts, nodeError(k, fmt.Sprintf("unknown type field %q", k.Value))
		}
	}

	if ts.Name == "" {
		return ts, nodeError(n, "type entry has no name")
	}
	return ts, nil
}

// scalarPayload maps a YAML scalar to a payload by its resolved tag.
func scalarPayload(n *yaml.Node) (any, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return nil, nodeError(n, "constant payload must be a scalar")
	}

	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, nodeError(n, err.Error())
		}
		return b, nil
	case "!!int":
		var i int
		if err := n.Decode(&i); err != nil {
			return nil, nodeError(n, err.Error())
		}
		return i, nil
	case "!!str":
		return n.Value, nil
	default:
		return nil, nodeError(n, fmt.Sprintf("unsupported payload %s %q", n.ShortTag(), n.Value))
	}
}

func nodeError(n *yaml.Node, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidCatalog, n.Line, msg)
}

// Marshal renders c as YAML, keeping declaration order.
func Marshal(c *Catalog) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	if len(c.Contracts) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, name := range c.Contracts {
			seq.Content = append(seq.Content, strNode(name))
		}
		root.Content = append(root.Content, strNode("contracts"), seq)
	}

	types := &yaml.Node{Kind: yaml.SequenceNode}
	for _, ts := range c.Types {
		item := &yaml.Node{Kind: yaml.MappingNode}
		item.Content = append(item.Content, strNode("name"), strNode(ts.Name))
		if ts.Extends != "" {
			item.Content = append(item.Content, strNode("extends"), strNode(ts.Extends))
		}
		if len(ts.Implements) > 0 {
			seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, name := range ts.Implements {
				seq.Content = append(seq.Content, strNode(name))
			}
			item.Content = append(item.Content, strNode("implements"), seq)
		}

		consts := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range ts.Constants {
			var v yaml.Node
			if err := v.Encode(k.Value); err != nil {
				return nil, fmt.Errorf("encode %s.%s: %w", ts.Name, k.Key, err)
			}
			consts.Content = append(consts.Content, strNode(k.Key), &v)
		}
		item.Content = append(item.Content, strNode("constants"), consts)
		types.Content = append(types.Content, item)
	}
	root.Content = append(root.Content, strNode("types"), types)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// WriteFile atomically replaces path with the YAML rendering of c.
func WriteFile(path string, c *Catalog) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending catalog file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger := log.WithComponent("catalog")
			logger.Debug().Err(err).Msg("cleanup pending catalog file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write catalog data: %w", err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace catalog file: %w", err)
	}
	return nil
}
