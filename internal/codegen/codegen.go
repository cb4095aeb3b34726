// SPDX-License-Identifier: MIT

// Package codegen renders Go source declaring the types of a catalog, with one
// accessor function per constant.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ManuGH/enumkit/catalog"
)

const enumImport = "github.com/ManuGH/enumkit/enum"

// ErrNameCollision classifies catalogs whose names map to the same Go identifier.
var ErrNameCollision = errors.New("generated name collision")

// Options controls the generated file.
type Options struct {
	// Package is the Go package name of the output. Required.
	Package string
	// Source names the catalog in the generated header.
	Source string
}

// Generate returns gofmt-formatted Go source for c.
func Generate(c *catalog.Catalog, opts Options) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}

	g := &generator{used: make(map[string]string)}
	for _, name := range c.Contracts {
		if _, err := g.claim(GoName(name), "contract "+name); err != nil {
			return nil, err
		}
	}
	for _, ts := range c.Types {
		if _, err := g.claim(GoName(ts.Name), "type "+ts.Name); err != nil {
			return nil, err
		}
	}

	source := opts.Source
	if source == "" {
		source = "a catalog"
	}
	fmt.Fprintf(&g.buf, "// Code generated by enumctl from %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&g.buf, "package %s\n\n", opts.Package)
	fmt.Fprintf(&g.buf, "import %q\n", enumImport)

	if len(c.Contracts) > 0 {
		g.buf.WriteString("\nvar (\n")
		for _, name := range c.Contracts {
			fmt.Fprintf(&g.buf, "\t%s = enum.MustDefineContract(%q)\n", GoName(name), name)
		}
		g.buf.WriteString(")\n")
	}

	for _, ts := range c.Types {
		if err := g.writeType(ts); err != nil {
			return nil, err
		}
	}

	out, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return out, nil
}

type generator struct {
	buf  bytes.Buffer
	used map[string]string // Go identifier -> what claimed it
}

func (g *generator) claim(ident, owner string) (string, error) {
	if prev, ok := g.used[ident]; ok {
		return "", fmt.Errorf("%w: %s and %s both map to %s", ErrNameCollision, prev, owner, ident)
	}
	g.used[ident] = owner
	return ident, nil
}

func (g *generator) writeType(ts catalog.TypeSpec) error {
	typeIdent := GoName(ts.Name)

	fmt.Fprintf(&g.buf, "\n// %s is the %s enum type.\n", typeIdent, ts.Name)
	fmt.Fprintf(&g.buf, "var %s = enum.Declare(%q).\n", typeIdent, ts.Name)
	if ts.Extends != "" {
		fmt.Fprintf(&g.buf, "\tExtends(%s).\n", GoName(ts.Extends))
	}
	if len(ts.Implements) > 0 {
		idents := make([]string, len(ts.Implements))
		for i, name := range ts.Implements {
			idents[i] = GoName(name)
		}
		fmt.Fprintf(&g.buf, "\tImplements(%s).\n", strings.Join(idents, ", "))
	}
	for _, k := range ts.Constants {
		lit, err := literal(k.Value)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", ts.Name, k.Key, err)
		}
		fmt.Fprintf(&g.buf, "\tConst(%q, %s).\n", k.Key, lit)
	}
	g.buf.WriteString("\tMustBuild()\n")

	for _, k := range ts.Constants {
		fn, err := g.claim(typeIdent+GoName(k.Key), ts.Name+"."+k.Key)
		if err != nil {
			return err
		}
		fmt.Fprintf(&g.buf, "\n// %s returns %s.%s.\n", fn, ts.Name, k.Key)
		fmt.Fprintf(&g.buf, "func %s() *enum.Member { return %s.MustGet(%q) }\n", fn, typeIdent, k.Key)
	}
	return nil
}

func literal(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "nil", nil
	case bool:
		return strconv.FormatBool(x), nil
	case string:
		return strconv.Quote(x), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), nil
	default:
		return "", fmt.Errorf("unsupported payload %v (%T)", v, v)
	}
}

var lowerCaser = cases.Lower(language.Und)

// GoName converts a declared name into an exported Go identifier.
// "PROBLEMATIC_NULL" becomes "ProblematicNull"; names that are already mixed
// case identifiers, like "EnumFixture", only get their first letter upper-cased.
func GoName(name string) string {
	if token.IsIdentifier(name) && !strings.Contains(name, "_") && hasLower(name) {
		r := []rune(name)
		r[0] = unicode.ToUpper(r[0])
		return string(r)
	}

	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, p := range parts {
		r := []rune(lowerCaser.String(p))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	out := b.String()
	if out == "" || !unicode.IsLetter([]rune(out)[0]) {
		out = "E" + out
	}
	return out
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}
