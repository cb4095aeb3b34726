// SPDX-License-Identifier: MIT

package enum

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Enum is the capability shared by enum values: *Member, user types that embed
// *Member, and custom implementations.
type Enum interface {
	fmt.Stringer
	Value() any
	Key() string
	Is(other Enum) bool
}

// Member is the singleton wrapping one declared payload of a Type. Members are
// immutable; obtain them through Type.FromValue or Type.Get, never by literal.
type Member struct {
	typ     *Type
	key     string
	payload any
	pk      payloadKey
}

// valueBacked is satisfied by *Member and by any type embedding it.
type valueBacked interface {
	enumValue() *Member
}

func (v *Member) enumValue() *Member { return v }

// TypeOf returns the declared type behind e, or nil when e is not backed by a *Member.
func TypeOf(e Enum) *Type {
	if IsNil(e) {
		return nil
	}
	if vb, ok := e.(valueBacked); ok {
		return vb.enumValue().typ
	}
	return nil
}

// IsNil reports whether e is nil, a typed nil pointer, or a wrapper whose
// embedded *Member is nil.
func IsNil(e Enum) bool {
	if e == nil {
		return true
	}
	switch rv := reflect.ValueOf(e); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return true
		}
	}
	if vb, ok := e.(valueBacked); ok {
		return vb.enumValue() == nil
	}
	return false
}

// Type returns the declared type v belongs to.
func (v *Member) Type() *Type { return v.typ }

// Value returns the wrapped payload exactly as declared.
func (v *Member) Value() any { return v.payload }

// Key returns the first key declaring the payload.
func (v *Member) Key() string { return v.key }

// Kind returns the payload kind.
func (v *Member) Kind() Kind { return v.pk.kind }

// Is reports whether other belongs to the same declared type and wraps a
// strictly equal payload. Parent and child types never compare equal.
func (v *Member) Is(other Enum) bool {
	if v == nil || IsNil(other) {
		return false
	}
	vb, ok := other.(valueBacked)
	if !ok {
		return false
	}
	o := vb.enumValue()
	return v.typ == o.typ && v.pk == o.pk
}

// In reports whether v Is any of others.
func (v *Member) In(others ...Enum) bool {
	for _, o := range others {
		if v.Is(o) {
			return true
		}
	}
	return false
}

// String returns the payload display form: "" for null, "true"/"false",
// decimal integers, strings unchanged.
func (v *Member) String() string {
	return v.pk.text()
}

// MarshalJSON encodes the bare payload, not an object.
func (v *Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.payload)
}

// MarshalYAML encodes the bare payload.
func (v *Member) MarshalYAML() (any, error) {
	return v.payload, nil
}
