package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/stride/internal/editor"
	"github.com/dshills/stride/internal/plugin/lua"
)

func newScriptCmd(g *globals) *cobra.Command {
	opts := &moveOptions{}
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "script <file.lua>",
		Short: "Run a Lua script against a document",
		Long: `Run a Lua script with the stride module loaded over a document, then
print the final selections. Scripts drive the session through
stride.move, stride.selections and stride.set_selections.`,
		Example: `  stride script down3.lua --file main.go --at 2:0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup()
			if err != nil {
				return err
			}

			doc, err := openDocument(opts.file)
			if err != nil {
				return err
			}
			sess, err := newBatchSession(doc, cfg, opts, editor.WithLogger(logger))
			if err != nil {
				return err
			}
			defer sess.Close()

			stateOpts := []lua.StateOption{lua.WithLogger(logger)}
			if timeout > 0 {
				stateOpts = append(stateOpts, lua.WithExecutionTimeout(timeout))
			}

			L := lua.NewState(stateOpts...)
			defer L.Close()
			if err := L.Install(sess); err != nil {
				return err
			}
			if err := L.DoFile(args[0]); err != nil {
				return err
			}

			return printSelections(cmd.OutOrStdout(), sess.Selections())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "Document to load (- for stdin)")
	cmd.Flags().StringSliceVar(&opts.at, "at", []string{"0:0"}, "Initial selections as line:char or line:char-line:char")
	cmd.Flags().StringVar(&opts.behavior, "behavior", "", "Selection behavior (caret or character); defaults to the config")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Viewport height for page motions; defaults to the config")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Script execution timeout; defaults to 5s")
	return cmd
}
