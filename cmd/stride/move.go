package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/stride/internal/config"
	"github.com/dshills/stride/internal/editor"
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
	"github.com/dshills/stride/internal/input"
)

type moveOptions struct {
	file     string
	at       []string
	behavior string
	shift    string
	count    int
	avoidEOL bool
	height   int
}

func newMoveCmd(g *globals) *cobra.Command {
	opts := &moveOptions{}

	cmd := &cobra.Command{
		Use:   "move <action>...",
		Short: "Apply selection actions to a document and print the result",
		Long: `Apply one or more select.* actions in order and print the resulting
selections, one per line, as anchor-active pairs of 0-based line:character
positions.`,
		Example: `  stride move select.down select.lineEnd --file main.go --at 0:0
  stride move select.right --shift extend --at 0:0,4:2 --file notes.txt`,
		Args: cobra.MinimumNArgs(1),
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

			for _, name := range args {
				action, err := buildAction(name, opts, cmd.Flags().Changed("avoid-eol"))
				if err != nil {
					return err
				}
				if res := sess.Dispatch(action); res.IsError() {
					return fmt.Errorf("%s: %w", name, res.Error)
				}
			}

			return printSelections(cmd.OutOrStdout(), sess.Selections())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "Document to load (- for stdin)")
	cmd.Flags().StringSliceVar(&opts.at, "at", []string{"0:0"}, "Initial selections as line:char or line:char-line:char")
	cmd.Flags().StringVar(&opts.behavior, "behavior", "", "Selection behavior (caret or character); defaults to the config")
	cmd.Flags().StringVar(&opts.shift, "shift", "jump", "Shift policy (jump, extend or select)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "Count passed to every action")
	cmd.Flags().BoolVar(&opts.avoidEOL, "avoid-eol", false, "Keep cursors off line ends")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Viewport height for page motions; defaults to the config")
	return cmd
}

// newBatchSession creates a session over doc for a non-interactive run.
func newBatchSession(doc *buffer.Buffer, cfg *config.Config, opts *moveOptions, extra ...editor.Option) (*editor.Session, error) {
	if opts.behavior != "" {
		cfg.Editor.SelectionBehavior = opts.behavior
	}
	b, err := cursor.ParseBehavior(cfg.Editor.SelectionBehavior)
	if err != nil {
		return nil, err
	}

	sels, err := parseSelections(opts.at)
	if err != nil {
		return nil, err
	}

	height := cfg.View.Height
	if opts.height > 0 {
		height = opts.height
	}

	options := append([]editor.Option{
		editor.WithBehavior(b),
		editor.WithColumns(cfg.Columns()),
		editor.WithAvoidEOL(cfg.Motion.AvoidEOL),
		editor.WithView(editor.NewViewport(height, cfg.Motion.ScrollOff)),
		editor.WithSelections(sels...),
	}, extra...)
	return editor.New(doc, options...), nil
}

func buildAction(name string, opts *moveOptions, avoidEOLSet bool) (input.Action, error) {
	if _, err := cursor.ParseShiftPolicy(opts.shift); err != nil {
		return input.Action{}, err
	}

	action := input.NewAction(name).WithSource(input.SourceCommandLine)
	if opts.shift != "" && opts.shift != "jump" {
		action = action.WithArg(input.ArgShift, opts.shift)
	}
	if avoidEOLSet {
		action = action.WithArg(input.ArgAvoidEOL, opts.avoidEOL)
	}
	if opts.count > 0 {
		action = action.WithCount(opts.count)
	}
	return action, nil
}

// openDocument reads a document from path, or stdin for "-".
func openDocument(path string) (*buffer.Buffer, error) {
	if path == "-" || path == "" {
		return buffer.NewBufferFromReader(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return buffer.NewBufferFromReader(f)
}

// parsePosition parses "line:char".
func parsePosition(s string) (buffer.Position, error) {
	lineStr, charStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return buffer.Position{}, fmt.Errorf("invalid position %q: want line:char", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 0 {
		return buffer.Position{}, fmt.Errorf("invalid line in %q", s)
	}
	char, err := strconv.Atoi(charStr)
	if err != nil || char < 0 {
		return buffer.Position{}, fmt.Errorf("invalid character in %q", s)
	}
	return buffer.Position{Line: line, Character: char}, nil
}

// parseSelection parses "line:char" as a caret or "line:char-line:char"
// as an anchor-active pair.
func parseSelection(s string) (cursor.Selection, error) {
	anchorStr, activeStr, ranged := strings.Cut(s, "-")
	anchor, err := parsePosition(anchorStr)
	if err != nil {
		return cursor.Selection{}, err
	}
	if !ranged {
		return cursor.NewCaret(anchor), nil
	}
	active, err := parsePosition(activeStr)
	if err != nil {
		return cursor.Selection{}, err
	}
	return cursor.NewSelection(anchor, active), nil
}

func parseSelections(args []string) ([]cursor.Selection, error) {
	sels := make([]cursor.Selection, 0, len(args))
	for _, arg := range args {
		sel, err := parseSelection(arg)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

func formatPosition(p buffer.Position) string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Character)
}

// formatSelection is the inverse of parseSelection.
func formatSelection(sel cursor.Selection) string {
	if sel.IsEmpty() {
		return formatPosition(sel.Active)
	}
	return formatPosition(sel.Anchor) + "-" + formatPosition(sel.Active)
}

func printSelections(w io.Writer, sels []cursor.Selection) error {
	for _, sel := range sels {
		if _, err := fmt.Fprintln(w, formatSelection(sel)); err != nil {
			return err
		}
	}
	return nil
}
