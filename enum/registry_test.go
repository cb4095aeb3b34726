// SPDX-License-Identifier: MIT

package enum_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/enumkit/enum"
)

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, enum.Default(), enum.Default())

	got, ok := enum.Default().Lookup("EnumFixture")
	require.True(t, ok)
	assert.Same(t, EnumFixture, got)
	assert.Same(t, enum.Default(), EnumFixture.Registry())
}

func TestRegistry_Duplicate(t *testing.T) {
	r := enum.NewRegistry()
	first := enum.Declare("Status").In(r).Const("ON", true).MustBuild()

	_, err := enum.Declare("Status").In(r).Const("OFF", false).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, enum.ErrDuplicateType))

	got, ok := r.Lookup("Status")
	require.True(t, ok)
	assert.Same(t, first, got, "first declaration wins")

	_, err = r.DefineContract("Status")
	assert.True(t, errors.Is(err, enum.ErrDuplicateType), "types and contracts share one namespace")
}

func TestRegistry_DefineContract(t *testing.T) {
	r := enum.NewRegistry()

	c, err := r.DefineContract("Printable")
	require.NoError(t, err)
	assert.Equal(t, "Printable", c.Name())
	assert.Equal(t, "Printable", c.String())

	_, err = r.DefineContract("Printable")
	assert.True(t, errors.Is(err, enum.ErrDuplicateType))

	_, err = r.DefineContract("")
	assert.True(t, errors.Is(err, enum.ErrInvalidDeclaration))

	got, ok := r.Contract("Printable")
	require.True(t, ok)
	assert.Same(t, c, got)
}

func TestRegistry_Resolve(t *testing.T) {
	r := enum.NewRegistry()
	c, err := r.DefineContract("Shape")
	require.NoError(t, err)
	typ := enum.Declare("Circle").In(r).Implements(c).Const("UNIT", 1).MustBuild()

	b, ok := r.Resolve("Circle")
	require.True(t, ok)
	assert.Equal(t, enum.Binding(typ), b)

	b, ok = r.Resolve("Shape")
	require.True(t, ok)
	assert.Equal(t, enum.Binding(c), b)

	_, ok = r.Resolve("test")
	assert.False(t, ok)
}

func TestRegistry_Order(t *testing.T) {
	r := enum.NewRegistry()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		enum.Declare(name).In(r).Const("X", name).MustBuild()
	}
	for _, name := range []string{"Second", "First"} {
		_, err := r.DefineContract(name)
		require.NoError(t, err)
	}

	var types []string
	for _, typ := range r.Types() {
		types = append(types, typ.Name())
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, types)

	var contracts []string
	for _, c := range r.Contracts() {
		contracts = append(contracts, c.Name())
	}
	assert.Equal(t, []string{"Second", "First"}, contracts)
}
