// SPDX-License-Identifier: MIT

package enum

// Binding is what an enum set can be bound to: a declared *Type or a *Contract.
type Binding interface {
	Name() string
	// Admits reports whether e may join a set bound to this binding.
	Admits(e Enum) bool
	binding()
}

// Contract is a named capability shared by several enum types, the
// counterpart of binding a set to an interface rather than a concrete type.
type Contract struct {
	name     string
	registry *Registry
}

// Conformer is implemented by custom Enum implementations that are not
// backed by a declared Type but still satisfy contracts.
type Conformer interface {
	Conforms(c *Contract) bool
}

// Name returns the contract name.
func (c *Contract) Name() string { return c.name }

// String implements fmt.Stringer.
func (c *Contract) String() string { return c.name }

// Admits reports whether e's declared type implements c, or whether a custom
// implementation says it conforms.
func (c *Contract) Admits(e Enum) bool {
	if c == nil || e == nil {
		return false
	}
	if t := TypeOf(e); t != nil {
		return t.Implements(c)
	}
	if cf, ok := e.(Conformer); ok {
		return cf.Conforms(c)
	}
	return false
}

func (c *Contract) binding() {}
