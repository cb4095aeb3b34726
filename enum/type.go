// SPDX-License-Identifier: MIT

package enum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ManuGH/enumkit/internal/log"
	"github.com/ManuGH/enumkit/internal/metrics"
)

// Constant is one declared (key, payload) pair.
type Constant struct {
	Key   string
	Value any
}

// Type is a declared enum type: an ordered, immutable list of constants.
// All methods are safe for concurrent use.
type Type struct {
	name      string
	parent    *Type
	contracts []*Contract
	constants []Constant
	index     map[string]int     // key -> position
	first     map[payloadKey]int // payload -> position of first key declaring it
	registry  *Registry
}

// Builder collects the declaration of a Type. Use Declare to start one.
type Builder struct {
	name      string
	parent    *Type
	contracts []*Contract
	constants []Constant
	registry  *Registry
}

// Declare starts the declaration of a type named name in the default registry.
func Declare(name string) *Builder {
	return &Builder{name: name}
}

// In declares the type in r instead of the default registry.
func (b *Builder) In(r *Registry) *Builder {
	b.registry = r
	return b
}

// Extends inherits parent's constants and contracts. The type's own constants
// come first; inherited ones it does not redeclare follow in parent order.
func (b *Builder) Extends(parent *Type) *Builder {
	b.parent = parent
	return b
}

// Implements marks the type as satisfying contracts.
func (b *Builder) Implements(contracts ...*Contract) *Builder {
	b.contracts = append(b.contracts, contracts...)
	return b
}

// Const appends a constant. Declaration order is preserved.
func (b *Builder) Const(key string, value any) *Builder {
	b.constants = append(b.constants, Constant{Key: key, Value: value})
	return b
}

// Build validates the declaration and registers the type.
func (b *Builder) Build() (*Type, error) {
	r := b.registry
	if r == nil {
		r = Default()
	}

	name := strings.TrimSpace(b.name)
	if name == "" {
		return nil, fmt.Errorf("%w: type name is empty", ErrInvalidDeclaration)
	}

	t := &Type{
		name:     name,
		parent:   b.parent,
		index:    make(map[string]int),
		first:    make(map[payloadKey]int),
		registry: r,
	}

	if p := b.parent; p != nil && p.registry != r {
		return nil, fmt.Errorf("%w: %s extends %s from another registry", ErrInvalidDeclaration, name, p.name)
	}

	for _, c := range b.constants {
		if !isIdentifier(c.Key) {
			return nil, fmt.Errorf("%w: %s: key %q is not an identifier", ErrInvalidDeclaration, name, c.Key)
		}
		if _, dup := t.index[c.Key]; dup {
			return nil, fmt.Errorf("%w: %s: key %s declared twice", ErrInvalidDeclaration, name, c.Key)
		}
		if _, ok := keyOf(c.Value); !ok {
			return nil, fmt.Errorf("%w: %s.%s: unsupported payload %s", ErrInvalidDeclaration, name, c.Key, describe(c.Value))
		}
		t.index[c.Key] = len(t.constants)
		t.constants = append(t.constants, c)
	}

	if p := b.parent; p != nil {
		for _, c := range p.constants {
			if _, overridden := t.index[c.Key]; overridden {
				continue
			}
			t.index[c.Key] = len(t.constants)
			t.constants = append(t.constants, c)
		}
		t.contracts = slices.Clone(p.contracts)
	}

	for _, c := range b.contracts {
		if c == nil || c.registry != r {
			return nil, fmt.Errorf("%w: %s implements a contract from another registry", ErrInvalidDeclaration, name)
		}
		if !slices.Contains(t.contracts, c) {
			t.contracts = append(t.contracts, c)
		}
	}

	for i, c := range t.constants {
		k, _ := keyOf(c.Value)
		if _, seen := t.first[k]; !seen {
			t.first[k] = i
		}
	}

	if err := r.registerType(t); err != nil {
		return nil, err
	}
	metrics.RecordTypeDeclared()
	logger := log.WithComponent("enum")
	logger.Debug().
		Str(log.FieldType, name).
		Int(log.FieldCount, len(t.constants)).
		Msg("enum type declared")
	return t, nil
}

// MustBuild is Build for package-level declarations; it panics on error.
func (b *Builder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.name }

// String implements fmt.Stringer.
func (t *Type) String() string { return t.name }

// Parent returns the type t extends, or nil.
func (t *Type) Parent() *Type { return t.parent }

// Registry returns the registry t is declared in.
func (t *Type) Registry() *Registry { return t.registry }

// Len returns the number of declared constants, inherited ones included.
func (t *Type) Len() int { return len(t.constants) }

// Constants returns the declared constants in declaration order.
func (t *Type) Constants() []Constant {
	return slices.Clone(t.constants)
}

// Keys returns the declared keys in declaration order.
func (t *Type) Keys() []string {
	keys := make([]string, len(t.constants))
	for i, c := range t.constants {
		keys[i] = c.Key
	}
	return keys
}

// ToMap returns the raw key -> payload mapping.
func (t *Type) ToMap() map[string]any {
	m := make(map[string]any, len(t.constants))
	for _, c := range t.constants {
		m[c.Key] = c.Value
	}
	return m
}

// Values returns the singleton value of every declared key.
func (t *Type) Values() map[string]*Member {
	m := make(map[string]*Member, len(t.constants))
	for _, c := range t.constants {
		m[c.Key] = t.MustFromValue(c.Value)
	}
	return m
}

// All returns the singleton value of every declared key in declaration order.
// Keys sharing a payload yield the same instance.
func (t *Type) All() []*Member {
	out := make([]*Member, len(t.constants))
	for i, c := range t.constants {
		out[i] = t.MustFromValue(c.Value)
	}
	return out
}

// IsValidKey reports whether key is declared, whatever its payload.
func (t *Type) IsValidKey(key string) bool {
	_, ok := t.index[key]
	return ok
}

// IsValid reports whether v strictly matches a declared payload.
func (t *Type) IsValid(v any) bool {
	_, ok := t.Search(v)
	return ok
}

// Search returns the first key declaring v. ok is false when no key does,
// which is distinct from finding a key whose payload is falsy.
func (t *Type) Search(v any) (key string, ok bool) {
	k, supported := keyOf(v)
	if !supported {
		return "", false
	}
	i, ok := t.first[k]
	if !ok {
		return "", false
	}
	return t.constants[i].Key, true
}

// FromValue returns the singleton for payload v.
func (t *Type) FromValue(v any) (*Member, error) {
	k, ok := keyOf(v)
	var i int
	if ok {
		i, ok = t.first[k]
	}
	if !ok {
		metrics.RecordInvalidValue(t.name)
		return nil, fmt.Errorf("%w: %s is not part of the enum %s", ErrInvalidValue, describe(v), t.name)
	}
	return t.registry.pool.instance(t, k, i), nil
}

// MustFromValue is FromValue that panics on an undeclared payload.
func (t *Type) MustFromValue(v any) *Member {
	val, err := t.FromValue(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Get returns the singleton for the constant named key.
func (t *Type) Get(key string) (*Member, error) {
	i, ok := t.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: no static method or enum constant %q in %s", ErrNoSuchConstant, key, t.name)
	}
	return t.FromValue(t.constants[i].Value)
}

// MustGet is Get that panics on an undeclared key. Generated accessors use it.
func (t *Type) MustGet(key string) *Member {
	v, err := t.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Contracts returns the contracts t implements, inherited ones included.
func (t *Type) Contracts() []*Contract {
	return slices.Clone(t.contracts)
}

// Implements reports whether t, or a type it extends, implements c.
func (t *Type) Implements(c *Contract) bool {
	return slices.Contains(t.contracts, c)
}

// Admits reports whether e belongs to exactly this type. Values of a parent
// or child type are not admitted.
func (t *Type) Admits(e Enum) bool {
	return e != nil && TypeOf(e) == t
}

func (t *Type) binding() {}
