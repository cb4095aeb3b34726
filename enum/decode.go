// SPDX-License-Identifier: MIT

package enum

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeValue parses data as a single JSON scalar and returns the matching
// value of t. Integral numbers decode as integers; fractional numbers,
// arrays and objects are never declared payloads.
func (t *Type) DecodeValue(data []byte) (*Member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode %s payload: %v", ErrInvalidValue, t.name, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: decode %s payload: trailing data", ErrInvalidValue, t.name)
	}

	if n, ok := raw.(json.Number); ok {
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not part of the enum %s", ErrInvalidValue, n.String(), t.name)
		}
		raw = i
	}
	return t.FromValue(raw)
}
