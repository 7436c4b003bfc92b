// Command rind draws the rind tiling of a circle cut by a vertical chord.
//
// Usage:
//
//	rind [render|sweep|slider] [flags]
//
// render paints a single chord position, sweep paints one frame per slider
// stop and slider reads positions interactively from the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gogpu/gg"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string) error {
	cmd := "render"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	cfg, err := LoadConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		// Usage has already been printed.
		return nil
	}
	if err != nil {
		return err
	}
	log := newLogger(os.Stderr, cfg.Verbose)
	gg.SetLogger(log)

	switch cmd {
	case "render":
		return NewShell(cfg, log).Render()

	case "sweep":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return NewShell(cfg, log).Sweep(ctx)

	case "slider":
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "position: ",
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		log = newLogger(rl.Stderr(), cfg.Verbose)
		gg.SetLogger(log)

		fmt.Fprintln(rl.Stdout(), "enter a position, +/- to step, q to quit")
		err = NewShell(cfg, log).Interactive(rl, rl.Stdout())
		rl.Close()
		if err != nil {
			return err
		}
		if !cfg.NoConfirm {
			confirmExit(os.Stdin, os.Stdout)
		}
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "rind: %v\n", err)
		os.Exit(1)
	}
}
