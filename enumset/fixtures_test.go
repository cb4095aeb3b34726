// SPDX-License-Identifier: MIT

package enumset_test

import "github.com/ManuGH/enumkit/enum"

var EnumFixture = enum.Declare("EnumFixture").
	Const("FOO", "foo").
	Const("BAR", "bar").
	Const("NUMBER", 42).
	Const("PROBLEMATIC_NUMBER", 0).
	Const("PROBLEMATIC_NULL", nil).
	Const("PROBLEMATIC_EMPTY_STRING", "").
	Const("PROBLEMATIC_BOOLEAN_FALSE", false).
	MustBuild()

var EnumConflict = enum.Declare("EnumConflict").
	Const("FOO", "foo").
	Const("BAR", "bar").
	MustBuild()

var TestEnumInterface = enum.MustDefineContract("TestEnumInterface")

var TestEnum1 = enum.Declare("TestEnum1").
	Implements(TestEnumInterface).
	Const("TEST_1", "test1").
	Const("SHARED", "shared").
	MustBuild()

var TestEnum2 = enum.Declare("TestEnum2").
	Implements(TestEnumInterface).
	Const("TEST_2", "test2").
	Const("SHARED", "shared").
	MustBuild()

func fixtureFoo() *enum.Member { return EnumFixture.MustGet("FOO") }
func fixtureBar() *enum.Member { return EnumFixture.MustGet("BAR") }
func conflictFoo() *enum.Member { return EnumConflict.MustGet("FOO") }
func test1Shared() *enum.Member { return TestEnum1.MustGet("SHARED") }
func test2Shared() *enum.Member { return TestEnum2.MustGet("SHARED") }

// label is a custom enum implementation with no declared type.
type label string

func (l label) Value() any { return string(l) }
func (l label) Key() string { return string(l) }
func (l label) String() string { return string(l) }
func (l label) Is(o enum.Enum) bool {
	other, ok := o.(label)
	return ok && other == l
}
