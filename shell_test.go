package main

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines []string
	err   error
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func testShell(t *testing.T, modify func(*Config)) (*Shell, Config) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Out = filepath.Join(t.TempDir(), "out")
	cfg.Width, cfg.Height = 200, 100
	if modify != nil {
		modify(&cfg)
	}
	require.NoError(t, cfg.Validate())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewShell(cfg, log), cfg
}

func TestShellRender(t *testing.T) {
	for _, format := range []string{"svg", "png"} {
		t.Run(format, func(t *testing.T) {
			sh, cfg := testShell(t, func(c *Config) {
				c.Format = format
				c.Position = -0.5
			})
			require.NoError(t, sh.Render())

			data, err := os.ReadFile(filepath.Join(cfg.Out, "rind_-0.50."+format))
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestShellSweep(t *testing.T) {
	sh, cfg := testShell(t, func(c *Config) {
		c.SliderStep = 0.5
		c.Jobs = 2
	})
	require.NoError(t, sh.Sweep(context.Background()))

	entries, err := os.ReadDir(cfg.Out)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{
		"frame_0000.svg", "frame_0001.svg", "frame_0002.svg", "frame_0003.svg", "frame_0004.svg",
	}, names)

	// The middle frame bisects the circle and has no tiling.
	data, err := os.ReadFile(filepath.Join(cfg.Out, "frame_0002.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hue: 0.0°")
}

func TestShellSweepPNG(t *testing.T) {
	sh, cfg := testShell(t, func(c *Config) {
		c.Format = "png"
		c.SliderStep = 0.25
		c.Jobs = 4
	})
	require.NoError(t, sh.Sweep(context.Background()))

	entries, err := os.ReadDir(cfg.Out)
	require.NoError(t, err)
	require.Len(t, entries, 9)
	for _, e := range entries {
		f, err := os.Open(filepath.Join(cfg.Out, e.Name()))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, e.Name())
		assert.Equal(t, 200, img.Bounds().Dx(), e.Name())
		assert.Equal(t, 100, img.Bounds().Dy(), e.Name())
	}
}

func TestShellSweepCanceled(t *testing.T) {
	sh, _ := testShell(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sh.Sweep(ctx), context.Canceled)
}

func TestShellInteractive(t *testing.T) {
	sh, cfg := testShell(t, nil)
	rl := &scriptedReader{lines: []string{"0.5", "+++", "", "wiggle", "-", "-0.25", "q", "0.9"}}

	var out bytes.Buffer
	require.NoError(t, sh.Interactive(rl, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "Line Position 0.00  Hue: 0.0°  pieces 0"))
	assert.True(t, strings.HasPrefix(lines[1], "Line Position 0.50 "))
	assert.True(t, strings.HasPrefix(lines[2], "Line Position 0.53 "))
	assert.True(t, strings.HasPrefix(lines[3], "Line Position 0.53 "))
	assert.Contains(t, lines[4], `unrecognized input "wiggle"`)
	assert.True(t, strings.HasPrefix(lines[5], "Line Position 0.52 "))
	assert.True(t, strings.HasPrefix(lines[6], "Line Position -0.25 "))
	// Input after q is never read.
	assert.Equal(t, []string{"0.9"}, rl.lines)

	data, err := os.ReadFile(filepath.Join(cfg.Out, "slider.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Reduced Pieces Forming Circle")
}

func TestShellInteractiveInterrupt(t *testing.T) {
	sh, _ := testShell(t, nil)
	rl := &scriptedReader{err: readline.ErrInterrupt}

	var out bytes.Buffer
	require.NoError(t, sh.Interactive(rl, &out))
	assert.Equal(t, 1, strings.Count(out.String(), "Line Position"))
}

func TestShellInteractiveReadError(t *testing.T) {
	sh, _ := testShell(t, nil)
	rl := &scriptedReader{err: os.ErrClosed}
	assert.ErrorIs(t, sh.Interactive(rl, io.Discard), os.ErrClosed)
}

func TestConfirmExit(t *testing.T) {
	var out bytes.Buffer
	confirmExit(strings.NewReader("\n"), &out)
	assert.Equal(t, "Press ENTER to exit", out.String())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run([]string{"-out", dir, "-pos", "0.3"}))
	_, err := os.Stat(filepath.Join(dir, "rind_+0.30.svg"))
	assert.NoError(t, err)

	assert.ErrorContains(t, run([]string{"frobnicate", "-out", dir}), `unknown command "frobnicate"`)
	assert.Error(t, run([]string{"-format", "gif"}))

	// Asking for usage is not a failure.
	assert.NoError(t, run([]string{"-h"}))
	assert.NoError(t, run([]string{"sweep", "-help"}))
	assert.Error(t, run([]string{"-nosuchflag"}))
}
