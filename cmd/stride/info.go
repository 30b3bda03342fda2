package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/stride/internal/dispatcher/handlers/selection"
	"github.com/dshills/stride/internal/input"
)

func newActionsCmd() *cobra.Command {
	var keys bool

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List selection actions or the default key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !keys {
				for _, name := range selection.Actions() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, b := range input.DefaultKeymap().Bindings() {
				fmt.Fprintf(tw, "%s\t%s\n", b.Key, describe(b.Action))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&keys, "keys", false, "List key bindings instead of actions")
	return cmd
}

// describe renders an action with its arguments, such as
// "select.down shift=extend".
func describe(a input.Action) string {
	s := a.Name
	if shift := a.Args.GetString(input.ArgShift); shift != "" {
		s += " shift=" + shift
	}
	return s
}

func newConfigCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, path, err := g.load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := g.load()
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	})

	return cmd
}
