// SPDX-License-Identifier: MIT

// Package enumset provides a de-duplicating collection of enum values that
// all belong to one declared type or satisfy one contract.
//
// A Set is single-owner: it does no internal locking.
package enumset

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/ManuGH/enumkit/enum"
	"github.com/ManuGH/enumkit/internal/log"
	"github.com/ManuGH/enumkit/internal/metrics"
)

// Set holds unique enum values. The zero value is an empty, unbound set.
//
// Equality is deliberately split by binding. Sets bound to a type (explicitly
// or through their first member) compare members with Is. Sets bound to a
// contract compare with Is and fall back to strict payload equality, so two
// implementations of the contract wrapping the same payload count as one member.
type Set struct {
	typ      *enum.Type     // bound to a declared type
	contract *enum.Contract // bound to a contract
	custom   reflect.Type   // bound to the Go type of a custom implementation
	members  []enum.Enum
}

// New returns an unbound set. The first attached value binds it.
func New() *Set {
	return &Set{}
}

// Of returns an empty set bound to b, a *enum.Type or *enum.Contract.
func Of(b enum.Binding) (*Set, error) {
	switch x := b.(type) {
	case *enum.Type:
		if x != nil {
			return &Set{typ: x}, nil
		}
	case *enum.Contract:
		if x != nil {
			return &Set{contract: x}, nil
		}
	}
	return nil, fmt.Errorf("%w: enum set needs a declared enum type or contract", enum.ErrInvalidArgument)
}

// Named returns an empty set bound to the type or contract registered under
// name in the default registry.
func Named(name string) (*Set, error) {
	b, ok := enum.Default().Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a declared enum type or contract", enum.ErrInvalidArgument, name)
	}
	return Of(b)
}

// FromValue builds a set bound to t from a comma-separated list of string
// payloads. With silent set, pieces t does not declare are skipped; otherwise
// the first one aborts construction and its error is returned.
func FromValue(value string, t *enum.Type, silent bool) (*Set, error) {
	s, err := Of(t)
	if err != nil {
		return nil, err
	}

	logger := log.WithComponent("enumset")
	for _, piece := range strings.Split(value, ",") {
		v, err := t.FromValue(piece)
		if err != nil {
			if !silent {
				return nil, err
			}
			metrics.RecordSetSkip(t.Name())
			logger.Debug().
				Str(log.FieldType, t.Name()).
				Str(log.FieldValue, piece).
				Msg("skipping undeclared value")
			continue
		}
		if err := s.Attach(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Set) bound() bool {
	return s.typ != nil || s.contract != nil || s.custom != nil
}

// Binding returns the name of what s is bound to, or "" while unbound.
func (s *Set) Binding() string {
	switch {
	case s.typ != nil:
		return s.typ.Name()
	case s.contract != nil:
		return s.contract.Name()
	case s.custom != nil:
		return s.custom.String()
	default:
		return ""
	}
}

// bind adopts e's declared type, or its Go type when e is a custom implementation.
func (s *Set) bind(e enum.Enum) {
	if t := enum.TypeOf(e); t != nil {
		s.typ = t
		return
	}
	s.custom = reflect.TypeOf(e)
}

func (s *Set) admits(e enum.Enum) bool {
	switch {
	case s.typ != nil:
		return s.typ.Admits(e)
	case s.contract != nil:
		return s.contract.Admits(e)
	default:
		return reflect.TypeOf(e) == s.custom
	}
}

// matches applies the set's equality policy to e and a member m.
func (s *Set) matches(e, m enum.Enum) bool {
	if e.Is(m) {
		return true
	}
	return s.contract != nil && enum.StrictEqual(e.Value(), m.Value())
}

func (s *Set) index(e enum.Enum) int {
	return slices.IndexFunc(s.members, func(m enum.Enum) bool { return s.matches(e, m) })
}

// Attach adds e unless an equal member is already present. An unbound set
// binds to e's type first. Values the binding does not admit are rejected
// with enum.ErrUnexpectedValue.
func (s *Set) Attach(e enum.Enum) error {
	if enum.IsNil(e) {
		return fmt.Errorf("%w: nil value for enum set %s", enum.ErrUnexpectedValue, s.Binding())
	}
	if !s.bound() {
		s.bind(e)
	}
	if !s.admits(e) {
		return fmt.Errorf("%w: value %q is not part of the enum set %s", enum.ErrUnexpectedValue, e.String(), s.Binding())
	}
	if s.index(e) >= 0 {
		return nil
	}
	s.members = append(s.members, e)
	return nil
}

// AttachValue resolves v against the bound type and attaches the result. It
// fails with enum.ErrBadCall unless the set is bound to a declared type.
func (s *Set) AttachValue(v any) error {
	if s.typ == nil {
		return fmt.Errorf("%w: enum set is not bound to a declared enum type", enum.ErrBadCall)
	}
	val, err := s.typ.FromValue(v)
	if err != nil {
		return err
	}
	return s.Attach(val)
}

// Detach removes the first member e Is. Absent values are ignored.
//
// Detach never applies the payload fallback of contract-bound sets, so Have
// may report a member that Detach leaves in place.
func (s *Set) Detach(e enum.Enum) {
	if enum.IsNil(e) {
		return
	}
	i := slices.IndexFunc(s.members, e.Is)
	if i < 0 {
		return
	}
	s.members = slices.Delete(s.members, i, i+1)
}

// Have reports whether s holds a member equal to e under the set's policy.
func (s *Set) Have(e enum.Enum) bool {
	if enum.IsNil(e) {
		return false
	}
	return s.index(e) >= 0
}

// Count returns the number of members.
func (s *Set) Count() int {
	return len(s.members)
}

// Members returns the members in insertion order.
func (s *Set) Members() []enum.Enum {
	return slices.Clone(s.members)
}

// Values returns the raw payloads of the members in insertion order.
func (s *Set) Values() []any {
	out := make([]any, len(s.members))
	for i, m := range s.members {
		out[i] = m.Value()
	}
	return out
}

// String joins the members' display forms with commas, the format FromValue reads.
func (s *Set) String() string {
	parts := make([]string, len(s.members))
	for i, m := range s.members {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}

// MarshalJSON encodes the set as an array of raw payloads.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}
