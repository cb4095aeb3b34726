// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/enumkit/catalog"
	"github.com/ManuGH/enumkit/enum"
)

const fixture = "testdata/enums.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWithStderr(t, args...)
	return out, err
}

func runWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "-f", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "contract TestEnumInterface\n")
	assert.Contains(t, out, "type EnumFixture: 7 constants\n")
	assert.Contains(t, out, "type TestEnum1Child: 2 constants, extends TestEnum1\n")
	assert.Contains(t, out, "ok: 1 contracts, 3 types\n")
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := run(t, "check", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	out, err := run(t, "keys", "EnumFixture", "-f", fixture)
	require.NoError(t, err)
	assert.Equal(t, "FOO\nBAR\nNUMBER\nPROBLEMATIC_NUMBER\nPROBLEMATIC_NULL\nPROBLEMATIC_EMPTY_STRING\nPROBLEMATIC_BOOLEAN_FALSE\n", out)

	out, err = run(t, "keys", "TestEnum1Child", "-f", fixture)
	require.NoError(t, err)
	assert.Equal(t, "TEST_1\nEXTRA\n", out)

	_, err = run(t, "keys", "Missing", "-f", fixture)
	assert.ErrorIs(t, err, enum.ErrInvalidArgument)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"string", []string{"EnumFixture", "foo"}, "FOO\t\"foo\"\n"},
		{"empty string", []string{"EnumFixture", ""}, "PROBLEMATIC_EMPTY_STRING\t\"\"\n"},
		{"json int", []string{"--json", "EnumFixture", "42"}, "NUMBER\t42\n"},
		{"json null", []string{"--json", "EnumFixture", "null"}, "PROBLEMATIC_NULL\tnull\n"},
		{"json false", []string{"--json", "EnumFixture", "false"}, "PROBLEMATIC_BOOLEAN_FALSE\tfalse\n"},
		{"override", []string{"TestEnum1Child", "child"}, "TEST_1\t\"child\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"lookup", "-f", fixture}, tt.args...)
			out, err := run(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLookup_StrictTyping(t *testing.T) {
	_, err := run(t, "lookup", "-f", fixture, "EnumFixture", "42")
	assert.ErrorIs(t, err, enum.ErrInvalidValue)

	_, err = run(t, "lookup", "-f", fixture, "--json", "EnumFixture", `"42"`)
	assert.ErrorIs(t, err, enum.ErrInvalidValue)
}

func TestSet(t *testing.T) {
	out, err := run(t, "set", "-f", fixture, "EnumFixture", "foo,bar,foo")
	require.NoError(t, err)
	assert.Equal(t, `["foo","bar"]`+"\n", out)

	_, err = run(t, "set", "-f", fixture, "EnumFixture", "foo,nope")
	assert.ErrorIs(t, err, enum.ErrInvalidValue)

	out, err = run(t, "set", "-f", fixture, "--silent", "EnumFixture", "foo,nope")
	require.NoError(t, err)
	assert.Equal(t, `["foo"]`+"\n", out)
}

func TestSet_SilentFromEnvironment(t *testing.T) {
	t.Setenv("ENUMKIT_SILENT", "true")
	out, err := run(t, "set", "-f", fixture, "EnumFixture", "nope,bar")
	require.NoError(t, err)
	assert.Equal(t, `["bar"]`+"\n", out)
}

func TestLogLevelFlag(t *testing.T) {
	t.Setenv("ENUMKIT_LOG_LEVEL", "")

	out, stderr, err := runWithStderr(t, "--log-level", "debug", "set", "-f", fixture, "--silent", "EnumFixture", "bar,nope")
	require.NoError(t, err)
	assert.Equal(t, `["bar"]`+"\n", out)
	assert.Contains(t, stderr, "skipping undeclared value")
	assert.Contains(t, stderr, `"value":"nope"`)

	_, stderr, err = runWithStderr(t, "set", "-f", fixture, "--silent", "EnumFixture", "bar,nope")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "skipping undeclared value")
}

func TestGen_LogsThroughCommandContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enums_gen.go")
	_, stderr, err := runWithStderr(t, "--log-level", "info", "gen", "--package", "fixtures", "-o", path, "-f", fixture)
	require.NoError(t, err)
	assert.Contains(t, stderr, "declarations generated")
	assert.Contains(t, stderr, `"path":"testdata/enums.yaml"`)
	assert.Contains(t, stderr, `"component":"enumctl"`)
}

func TestFmt(t *testing.T) {
	c, err := catalog.LoadFile(fixture)
	require.NoError(t, err)
	want, err := catalog.Marshal(c)
	require.NoError(t, err)

	out, err := run(t, "fmt", "-f", fixture)
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestFmt_Write(t *testing.T) {
	src, err := os.ReadFile(fixture)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "enums.yml")
	require.NoError(t, os.WriteFile(path, src, 0o600))

	want, err := run(t, "fmt", "-f", path)
	require.NoError(t, err)

	out, err := run(t, "fmt", "-w", "-f", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestFmt_WriteRejectsNonYAML(t *testing.T) {
	_, err := run(t, "fmt", "-w", "-f", "../../catalog/testdata/fixture.json")
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)
}

func TestGen(t *testing.T) {
	out, err := run(t, "gen", "--package", "fixtures", "-f", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "// Code generated by enumctl from enums.yaml; DO NOT EDIT.")
	assert.Contains(t, out, "package fixtures")
	assert.Contains(t, out, `func EnumFixtureFoo() *enum.Member { return EnumFixture.MustGet("FOO") }`)
	assert.Contains(t, out, "Extends(TestEnum1).")

	path := filepath.Join(t.TempDir(), "enums_gen.go")
	out, err = run(t, "gen", "--package", "fixtures", "-o", path, "-f", fixture)
	require.NoError(t, err)
	assert.Empty(t, out)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "package fixtures")

	_, err = run(t, "gen", "-f", fixture)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Regexp(t, `^enumctl v\S+ \(commit \S+, built \S+\)\n$`, out)
}
