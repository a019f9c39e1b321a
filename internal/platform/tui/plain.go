package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// ANSI sequence that homes the cursor and clears the screen.
const clearSequence = "\x1b[H\x1b[2J"

// Bytes that arrive as-is when the terminal is in raw mode.
const (
	ctrlC = 0x03
	esc   = 0x1b
)

// KeyInput reads one key per command from a byte stream. Newlines and
// carriage returns are skipped so line-buffered input behaves like single
// keys; ctrl+c quits. Arrow keys arrive as escape sequences and count as one
// key each.
type KeyInput struct {
	r *bufio.Reader
}

// NewKeyInput wraps r.
func NewKeyInput(r io.Reader) *KeyInput {
	return &KeyInput{r: bufio.NewReader(r)}
}

// Next blocks until a key is read.
func (in *KeyInput) Next() (maze.Command, error) {
	for {
		r, _, err := in.r.ReadRune()
		if err != nil {
			return maze.CmdInvalid, err
		}
		switch r {
		case '\n', '\r':
			continue
		case ctrlC:
			return maze.CmdQuit, nil
		case esc:
			return in.escape(), nil
		}
		return maze.CommandFromKey(r), nil
	}
}

// escape consumes the rest of a sequence that started with ESC. CSI and SS3
// arrows (ESC [ A, ESC O A, also with modifiers like ESC [ 1 ; 5 A) map to
// directions. Any other sequence, or a lone ESC, is a single invalid key.
func (in *KeyInput) escape() maze.Command {
	if in.r.Buffered() == 0 {
		return maze.CmdInvalid
	}
	intro, err := in.r.ReadByte()
	if err != nil || (intro != '[' && intro != 'O') {
		return maze.CmdInvalid
	}
	for {
		b, err := in.r.ReadByte()
		if err != nil {
			return maze.CmdInvalid
		}
		if b < 0x40 || b > 0x7e {
			continue // parameter or intermediate byte
		}
		switch b {
		case 'A':
			return maze.CmdUp
		case 'B':
			return maze.CmdDown
		case 'C':
			return maze.CmdRight
		case 'D':
			return maze.CmdLeft
		}
		return maze.CmdInvalid
	}
}

// WriterRenderer prints frames as plain text.
type WriterRenderer struct {
	w      io.Writer
	screen *core.Screen
	opts   maze.RenderOptions
	clear  bool   // emit clearSequence before each frame
	sep    string // row separator, "\r\n" in raw mode
}

// NewWriterRenderer creates a renderer drawing width x height frames.
func NewWriterRenderer(w io.Writer, width, height int, opts maze.RenderOptions) *WriterRenderer {
	return &WriterRenderer{
		w:      w,
		screen: core.NewScreen(width, height),
		opts:   opts,
		sep:    "\n",
	}
}

// Render draws one frame.
func (r *WriterRenderer) Render(v maze.View) error {
	maze.Render(r.screen, v, r.opts)
	frame := RenderPlain(r.screen, r.sep)
	if r.clear {
		frame = clearSequence + frame
	}
	_, err := io.WriteString(r.w, frame)
	return err
}

// RawTerminal puts f into raw mode when it is a terminal. The returned
// function restores the previous state and is safe to call when nothing was
// changed.
func RawTerminal(f *os.File) (restore func(), raw bool, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, false, fmt.Errorf("raw terminal: %w", err)
	}
	return func() {
		//nolint:errcheck // Best-effort restore on exit
		term.Restore(fd, state)
	}, true, nil
}

// terminalSize returns the size of f, or the default screen when f is not a
// terminal.
func terminalSize(f *os.File) (int, int) {
	def := core.DefaultConfig()
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return def.ScreenW, def.ScreenH
	}
	return w, h
}

// RunPlain plays one run as a blocking console loop on stdin/stdout: render,
// read one key, resolve, repeat.
func RunPlain(setup Setup, seed int64, stdin, stdout *os.File) (maze.Report, error) {
	restore, raw, err := RawTerminal(stdin)
	if err != nil {
		return maze.Report{}, err
	}
	defer restore()

	width, height := terminalSize(stdout)
	out := NewWriterRenderer(stdout, width, height, maze.RenderOptions{
		DoubleWidth: setup.Config.Display.DoubleWidth,
	})
	out.clear = term.IsTerminal(int(stdout.Fd()))
	if raw {
		out.sep = "\r\n"
	}

	return PlayPlain(setup, resolveSeed(seed), NewKeyInput(stdin), out)
}

// PlayPlain runs the controller loop over any input and renderer and stores
// the finished run.
func PlayPlain(setup Setup, seed int64, in maze.InputSource, out maze.Renderer) (maze.Report, error) {
	ctrl, err := maze.NewController(setup.Source, ControllerOptions(setup.Config, seed), setup.logger())
	if err != nil {
		return maze.Report{}, err
	}

	report, err := ctrl.Run(in, out)
	setup.saveRun(report, seed)
	return report, err
}
