// SPDX-License-Identifier: MIT

package enum

import (
	"fmt"
	"sync"
)

// Registry indexes declared types and contracts by name and owns the
// instance pool their values are drawn from.
type Registry struct {
	mu        sync.RWMutex
	types     map[string]*Type
	contracts map[string]*Contract
	typeOrder []*Type
	ctOrder   []*Contract
	pool      Pool
}

// NewRegistry creates an empty registry with its own instance pool.
func NewRegistry() *Registry {
	return &Registry{
		types:     make(map[string]*Type),
		contracts: make(map[string]*Contract),
	}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry used by Declare and DefineContract.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// nameTaken must be called with r.mu held.
func (r *Registry) nameTaken(name string) bool {
	if _, ok := r.types[name]; ok {
		return true
	}
	_, ok := r.contracts[name]
	return ok
}

func (r *Registry) registerType(t *Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(t.name) {
		return fmt.Errorf("%w: %s is already declared", ErrDuplicateType, t.name)
	}
	r.types[t.name] = t
	r.typeOrder = append(r.typeOrder, t)
	return nil
}

// DefineContract registers a new capability contract under name.
func (r *Registry) DefineContract(name string) (*Contract, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: contract name is empty", ErrInvalidDeclaration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(name) {
		return nil, fmt.Errorf("%w: %s is already declared", ErrDuplicateType, name)
	}
	c := &Contract{name: name, registry: r}
	r.contracts[name] = c
	r.ctOrder = append(r.ctOrder, c)
	return c, nil
}

// Lookup returns the type declared under name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// Contract returns the contract defined under name.
func (r *Registry) Contract(name string) (*Contract, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contracts[name]
	return c, ok
}

// Resolve returns the type or contract registered under name.
func (r *Registry) Resolve(name string) (Binding, bool) {
	if t, ok := r.Lookup(name); ok {
		return t, true
	}
	if c, ok := r.Contract(name); ok {
		return c, true
	}
	return nil, false
}

// Types returns the declared types in registration order.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, len(r.typeOrder))
	copy(out, r.typeOrder)
	return out
}

// Contracts returns the defined contracts in registration order.
func (r *Registry) Contracts() []*Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Contract, len(r.ctOrder))
	copy(out, r.ctOrder)
	return out
}

// Pool returns the instance pool backing this registry's types.
func (r *Registry) Pool() *Pool {
	return &r.pool
}

// DefineContract registers a contract in the default registry.
func DefineContract(name string) (*Contract, error) {
	return Default().DefineContract(name)
}

// MustDefineContract is DefineContract for package-level declarations; it panics on error.
func MustDefineContract(name string) *Contract {
	c, err := DefineContract(name)
	if err != nil {
		panic(err)
	}
	return c
}
