// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/ManuGH/enumkit/catalog"
	"github.com/ManuGH/enumkit/enum"
	"github.com/ManuGH/enumkit/enumset"
	"github.com/ManuGH/enumkit/internal/codegen"
	"github.com/ManuGH/enumkit/internal/log"
)

// load reads the catalog and declares it into a fresh registry.
func load(opts *options) (*catalog.Catalog, *enum.Registry, error) {
	c, err := catalog.LoadFile(opts.file)
	if err != nil {
		return nil, nil, err
	}
	r := enum.NewRegistry()
	if _, err := c.Declare(r); err != nil {
		return nil, nil, err
	}
	return c, r, nil
}

func lookupType(r *enum.Registry, name string) (*enum.Type, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: type %s is not declared", enum.ErrInvalidArgument, name)
	}
	return t, nil
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the catalog and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, r, err := load(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ct := range r.Contracts() {
				fmt.Fprintf(out, "contract %s\n", ct.Name())
			}
			for _, t := range r.Types() {
				fmt.Fprintf(out, "type %s: %d constants", t.Name(), t.Len())
				if p := t.Parent(); p != nil {
					fmt.Fprintf(out, ", extends %s", p.Name())
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "ok: %d contracts, %d types\n", len(r.Contracts()), len(r.Types()))
			return nil
		},
	}
}

func keysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys TYPE",
		Short: "List the keys of a type in declaration order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := load(opts)
			if err != nil {
				return err
			}
			t, err := lookupType(r, args[0])
			if err != nil {
				return err
			}
			for _, k := range t.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func lookupCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "lookup TYPE VALUE",
		Short: "Resolve a payload to its constant",
		Long: "Resolve VALUE to the constant of TYPE carrying it. VALUE is a string\n" +
			"unless --json is set, in which case it is parsed as a JSON scalar.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := load(opts)
			if err != nil {
				return err
			}
			t, err := lookupType(r, args[0])
			if err != nil {
				return err
			}

			var v *enum.Member
			if asJSON {
				v, err = t.DecodeValue([]byte(args[1]))
			} else {
				v, err = t.FromValue(args[1])
			}
			if err != nil {
				return err
			}

			payload, err := json.Marshal(v)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Key(), payload)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "parse VALUE as a JSON scalar")
	return cmd
}

func setCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set TYPE LIST",
		Short: "Build a set from a comma-separated list of payloads",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := load(opts)
			if err != nil {
				return err
			}
			t, err := lookupType(r, args[0])
			if err != nil {
				return err
			}
			s, err := enumset.FromValue(args[1], t, opts.silent)
			if err != nil {
				return err
			}
			data, err := json.Marshal(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.silent, "silent", opts.silent, "skip undeclared values instead of failing")
	return cmd
}

func fmtCmd(opts *options) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Print the catalog in normalised YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := load(opts)
			if err != nil {
				return err
			}
			if !write {
				data, err := catalog.Marshal(c)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			f, err := catalog.FormatFromPath(opts.file)
			if err != nil {
				return err
			}
			if f != catalog.FormatYAML {
				return fmt.Errorf("%w: -w rewrites YAML only, got %s", catalog.ErrUnsupportedFormat, f)
			}
			if err := catalog.WriteFile(opts.file, c); err != nil {
				return err
			}
			logger := log.WithComponentFromContext(cmd.Context(), "enumctl")
			logger.Info().Msg("catalog rewritten")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the catalog file in place")
	return cmd
}

func genCmd(opts *options) *cobra.Command {
	var pkg, output string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go declarations for every type in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, err := load(opts)
			if err != nil {
				return err
			}
			src, err := codegen.Generate(c, codegen.Options{
				Package: pkg,
				Source:  filepath.Base(opts.file),
			})
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := renameio.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger := log.WithComponentFromContext(cmd.Context(), "enumctl")
			logger.Info().
				Str(log.FieldOutput, output).
				Int(log.FieldCount, len(c.Types)).
				Msg("declarations generated")
			return nil
		},
	}
	cmd.Flags().StringVar(&pkg, "package", "", "Go package name of the generated file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to FILE instead of stdout")
	_ = cmd.MarkFlagRequired("package")
	return cmd
}
