package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/stride/internal/config"
	"github.com/dshills/stride/internal/config/watcher"
	"github.com/dshills/stride/internal/editor"
	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/renderer"
)

func newViewCmd(g *globals) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Browse a document with the default keymap",
		Long: `Open a document in a read-only terminal viewer. Keys and mouse clicks
drive the selection engine; the configuration file is reloaded when it
changes. Press q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := g.load()
			if err != nil {
				return err
			}

			logger, err := g.logger(cfg)
			if err != nil {
				return err
			}
			// The terminal owns stderr while the viewer runs.
			logger.SetOutput(io.Discard)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logger.SetOutput(f)
			}

			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}

			return runViewer(cmd, cfg, path, doc, logger)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	return cmd
}

func runViewer(cmd *cobra.Command, cfg *config.Config, path string, doc *buffer.Buffer, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	vp := editor.NewViewport(cfg.View.Height, cfg.Motion.ScrollOff)
	sess := editor.New(doc,
		editor.WithBehavior(cfg.Behavior()),
		editor.WithColumns(cfg.Columns()),
		editor.WithAvoidEOL(cfg.Motion.AvoidEOL),
		editor.WithView(vp),
		editor.WithLogger(logger),
	)
	defer sess.Close()

	v := renderer.New(screen, sess, vp, renderer.WithLogger(logger))

	w, err := watcher.New(path, func(next *config.Config) {
		if err := v.PostConfig(next); err != nil {
			logger.Warn("config reload dropped", "err", err)
		}
	}, watcher.WithLogger(logger))
	if err != nil {
		logger.Warn("config watch disabled", "path", path, "err", err)
	} else {
		defer w.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("viewer started", "lines", doc.LineCount(), "editor", sess.ID())
	return v.Run(ctx)
}
