package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"rind-tiling/draw"
	"rind-tiling/rind"

	"github.com/chzyer/readline"
	"golang.org/x/sync/errgroup"
)

// Shell owns the output files and drives the engine, standing in for the
// window of the interactive program.
type Shell struct {
	cfg    Config
	engine *rind.Engine
	log    *slog.Logger
}

func NewShell(cfg Config, log *slog.Logger) *Shell {
	return &Shell{
		cfg:    cfg,
		engine: rind.NewEngine(cfg.Samples, cfg.Scale),
		log:    log,
	}
}

func (sh *Shell) painter() (draw.Painter, error) {
	return draw.New(sh.cfg.Format, sh.cfg.Width, sh.cfg.Height)
}

// paint computes the description for p and writes it to path.
func (sh *Shell) paint(painter draw.Painter, path string, p float64) (rind.RenderDescription, error) {
	rd := sh.engine.Compute(p)

	f, err := os.Create(path)
	if err != nil {
		return rd, fmt.Errorf("creating output: %w", err)
	}
	if err := painter.Paint(f, &rd); err != nil {
		f.Close()
		return rd, fmt.Errorf("painting %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return rd, fmt.Errorf("closing %s: %w", path, err)
	}

	sh.log.Debug("painted",
		"path", path,
		"position", p,
		"side", rd.Side,
		"degenerate", rd.Degenerate,
		"span", rd.SpanAngle,
		"hue", rd.HueAngleDegrees,
		"pieces", len(rd.TilingPieces),
		"area", rd.PieceArea())
	return rd, nil
}

func (sh *Shell) mkdir() error {
	if err := os.MkdirAll(sh.cfg.Out, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// Render paints the configured chord position once.
func (sh *Shell) Render() error {
	if err := sh.mkdir(); err != nil {
		return err
	}
	painter, err := sh.painter()
	if err != nil {
		return err
	}
	name := fmt.Sprintf("rind_%+.2f.%s", sh.cfg.Position, painter.Ext())
	path := filepath.Join(sh.cfg.Out, name)
	rd, err := sh.paint(painter, path, sh.cfg.Position)
	if err != nil {
		return err
	}
	sh.log.Info("rendered", "path", path, "hue", rd.HueAngleDegrees, "pieces", len(rd.TilingPieces))
	return nil
}

// SweepPositions lists every slider stop from min to max inclusive.
func SweepPositions(min, max, step float64) []float64 {
	n := int(math.Round((max-min)/step)) + 1
	s := NewSlider(min, max, step, nil)
	r := make([]float64, n)
	for i := range r {
		s.Set(min + float64(i)*step)
		r[i] = s.Value()
	}
	return r
}

// Sweep paints one frame per slider stop, as if the slider were dragged
// from one end to the other.
func (sh *Shell) Sweep(ctx context.Context) error {
	if err := sh.mkdir(); err != nil {
		return err
	}
	positions := SweepPositions(sh.cfg.SliderMin, sh.cfg.SliderMax, sh.cfg.SliderStep)
	sh.log.Info("sweeping", "frames", len(positions), "jobs", sh.cfg.Jobs, "dir", sh.cfg.Out)

	painter, err := sh.painter()
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sh.cfg.Jobs)
	for i, p := range positions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(sh.cfg.Out, fmt.Sprintf("frame_%04d.%s", i, painter.Ext()))
			_, err := sh.paint(painter, path, p)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	sh.log.Info("sweep done", "frames", len(positions))
	return nil
}

// LineReader is the part of a readline instance the slider loop uses.
type LineReader interface {
	Readline() (string, error)
}

var (
	errQuit     = errors.New("quit")
	errBadInput = errors.New("unrecognized input")
)

// sliderCommand interprets one line of slider input: a number sets the
// position, runs of '+' or '-' nudge by that many steps.
func sliderCommand(s *Slider, line string) error {
	switch line {
	case "":
		return s.Set(s.Value())
	case "q", "quit", "exit":
		return errQuit
	}
	if v, err := strconv.ParseFloat(line, 64); err == nil {
		return s.Set(v)
	}
	if strings.Trim(line, "+") == "" {
		return s.Nudge(len(line))
	}
	if strings.Trim(line, "-") == "" {
		return s.Nudge(-len(line))
	}
	return fmt.Errorf("%w %q", errBadInput, line)
}

// Interactive runs the slider event loop. Each accepted line repaints the
// slider file before the next line is read.
func (sh *Shell) Interactive(rl LineReader, out io.Writer) error {
	if err := sh.mkdir(); err != nil {
		return err
	}
	painter, err := sh.painter()
	if err != nil {
		return err
	}
	path := filepath.Join(sh.cfg.Out, "slider."+painter.Ext())

	slider := NewSlider(sh.cfg.SliderMin, sh.cfg.SliderMax, sh.cfg.SliderStep, func(p float64) error {
		rd, err := sh.paint(painter, path, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Line Position %.2f  %s  pieces %d\n", p, rd.Label(), len(rd.TilingPieces))
		return nil
	})
	if err := slider.Set(sh.cfg.Position); err != nil {
		return err
	}

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		err = sliderCommand(slider, strings.TrimSpace(line))
		if err == errQuit {
			break
		}
		if errors.Is(err, errBadInput) {
			fmt.Fprintln(out, err)
			continue
		}
		if err != nil {
			return err
		}
	}
	sh.log.Info("slider closed", "position", slider.Value(), "path", path)
	return nil
}

// confirmExit waits for a final line on r, like the original program's
// "Press ENTER to exit".
func confirmExit(r io.Reader, w io.Writer) {
	fmt.Fprint(w, "Press ENTER to exit")
	bufio.NewReader(r).ReadString('\n')
}
