// SPDX-License-Identifier: MIT

package enum_test

import (
	"strings"

	"github.com/ManuGH/enumkit/enum"
)

// EnumFixture mixes payload kinds, including the values loose equality confuses.
var EnumFixture = enum.Declare("EnumFixture").
	Const("FOO", "foo").
	Const("BAR", "bar").
	Const("NUMBER", 42).
	Const("PROBLEMATIC_NUMBER", 0).
	Const("PROBLEMATIC_NULL", nil).
	Const("PROBLEMATIC_EMPTY_STRING", "").
	Const("PROBLEMATIC_BOOLEAN_FALSE", false).
	MustBuild()

func fixtureFoo() *enum.Member { return EnumFixture.MustGet("FOO") }
func fixtureBar() *enum.Member { return EnumFixture.MustGet("BAR") }
func fixtureNumber() *enum.Member { return EnumFixture.MustGet("NUMBER") }
func fixtureProblematicNumber() *enum.Member { return EnumFixture.MustGet("PROBLEMATIC_NUMBER") }
func fixtureProblematicNull() *enum.Member { return EnumFixture.MustGet("PROBLEMATIC_NULL") }
func fixtureProblematicEmptyString() *enum.Member { return EnumFixture.MustGet("PROBLEMATIC_EMPTY_STRING") }
func fixtureProblematicBooleanFalse() *enum.Member { return EnumFixture.MustGet("PROBLEMATIC_BOOLEAN_FALSE") }

// EnumConflict declares payloads that collide with EnumFixture.
var EnumConflict = enum.Declare("EnumConflict").
	Const("FOO", "foo").
	Const("BAR", "bar").
	MustBuild()

func conflictFoo() *enum.Member { return EnumConflict.MustGet("FOO") }

// Role embeds *enum.Member to get a distinct Go type with the full enum API.
type Role struct{ *enum.Member }

var _ enum.Enum = Role{}

var RoleType = enum.Declare("Role").
	Const("ADMIN", "admin").
	Const("GUEST", "guest").
	MustBuild()

func RoleAdmin() Role { return Role{RoleType.MustGet("ADMIN")} }
func RoleGuest() Role { return Role{RoleType.MustGet("GUEST")} }

// customEnum implements enum.Enum without a declared type.
type customEnum struct{ value string }

func (c customEnum) Value() any { return c.value }
func (c customEnum) Key() string { return strings.ToUpper(c.value) }
func (c customEnum) String() string { return c.value }
func (c customEnum) Is(o enum.Enum) bool {
	other, ok := o.(customEnum)
	return ok && other.value == c.value
}
