// SPDX-License-Identifier: MIT

package enum

import (
	"sync"

	"github.com/ManuGH/enumkit/internal/metrics"
)

// poolKey identifies one singleton: the owning type plus the strict payload encoding.
type poolKey struct {
	typ     *Type
	payload payloadKey
}

// Pool hands out exactly one *Member per (type, payload). Entries are created
// on first request and never evicted. Safe for concurrent use: when callers
// race on a missing entry the first stored value wins and all of them get it.
type Pool struct {
	instances sync.Map // poolKey -> *Member
}

// instance returns the singleton for payload k of t; idx is the position of
// the first constant declaring k.
func (p *Pool) instance(t *Type, k payloadKey, idx int) *Member {
	pk := poolKey{typ: t, payload: k}
	if v, ok := p.instances.Load(pk); ok {
		metrics.RecordPoolLookup(t.name, true)
		return v.(*Member)
	}

	c := t.constants[idx]
	fresh := &Member{typ: t, key: c.Key, payload: c.Value, pk: k}
	actual, loaded := p.instances.LoadOrStore(pk, fresh)
	metrics.RecordPoolLookup(t.name, loaded)
	return actual.(*Member)
}

// Len returns the number of instances created so far.
func (p *Pool) Len() int {
	n := 0
	p.instances.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
