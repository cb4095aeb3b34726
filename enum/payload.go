// SPDX-License-Identifier: MIT

package enum

import (
	"fmt"
	"math"
	"strconv"
)

// Kind classifies the payload wrapped by an enum value.
type Kind uint8

// Payload kinds. Integers of every width share KindInt.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindString
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// payloadKey is the strict encoding of a payload. Two payloads share a key
// only when both kind and value match, so 0, false, "" and nil never collide.
type payloadKey struct {
	kind Kind
	n    int64
	s    string
}

// keyOf encodes v, reporting false when v is not a supported payload.
func keyOf(v any) (payloadKey, bool) {
	switch x := v.(type) {
	case nil:
		return payloadKey{kind: KindNull}, true
	case bool:
		k := payloadKey{kind: KindBool}
		if x {
			k.n = 1
		}
		return k, true
	case string:
		return payloadKey{kind: KindString, s: x}, true
	case int:
		return intKey(int64(x)), true
	case int8:
		return intKey(int64(x)), true
	case int16:
		return intKey(int64(x)), true
	case int32:
		return intKey(int64(x)), true
	case int64:
		return intKey(x), true
	case uint:
		return uintKey(uint64(x))
	case uint8:
		return uintKey(uint64(x))
	case uint16:
		return uintKey(uint64(x))
	case uint32:
		return uintKey(uint64(x))
	case uint64:
		return uintKey(x)
	default:
		return payloadKey{}, false
	}
}

func intKey(n int64) payloadKey {
	return payloadKey{kind: KindInt, n: n}
}

func uintKey(n uint64) (payloadKey, bool) {
	if n > math.MaxInt64 {
		return payloadKey{}, false
	}
	return intKey(int64(n)), true
}

// StrictEqual reports whether a and b are the same payload: same kind and same
// value, without coercion. Unsupported payloads are never equal to anything.
func StrictEqual(a, b any) bool {
	ka, ok := keyOf(a)
	if !ok {
		return false
	}
	kb, ok := keyOf(b)
	return ok && ka == kb
}

// text is the display form of a payload.
func (k payloadKey) text() string {
	switch k.kind {
	case KindBool:
		return strconv.FormatBool(k.n == 1)
	case KindInt:
		return strconv.FormatInt(k.n, 10)
	case KindString:
		return k.s
	default:
		return ""
	}
}

// describe renders v for error messages: strings quoted, nil as null.
func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprintf("%v (%T)", x, x)
	}
}
