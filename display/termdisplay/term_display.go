// Package termdisplay draws wireframes as characters in the terminal it runs in.
package termdisplay

import (
	"bufio"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"trigger_wireframe/display"
	vm "trigger_wireframe/vector_math"
)

const NAME = "terminal"

func init() {
	display.Register(NAME, func() display.Engine { return New(os.Stdin, os.Stdout) })
}

// Display renders into a Grid and repaints the whole terminal every frame. Settings
// width and height are only used when the output is not a terminal. Background is
// ignored, the terminal keeps its own.
type Display struct {
	in  *os.File
	out *os.File
	w   *bufio.Writer

	settings display.Settings
	grid     *Grid
	oldState *term.State
	input    chan []byte
}

func New(in, out *os.File) *Display {
	return &Display{in: in, out: out}
}

func (d *Display) Setup(s display.Settings) error {
	d.settings = s
	if s.VSync {
		log.Printf("VSync is not supported by the terminal display, ignoring it")
	}
	if s.Background != display.BLACK {
		log.Printf("Background colors are not supported by the terminal display, ignoring it")
	}
	cols, rows := d.size()
	d.grid = NewGrid(cols, rows)
	d.w = bufio.NewWriter(d.out)

	if term.IsTerminal(int(d.in.Fd())) {
		state, err := term.MakeRaw(int(d.in.Fd()))
		if err != nil {
			return errors.Wrap(err, "failed to switch terminal to raw mode")
		}
		d.oldState = state
	}
	d.input = make(chan []byte, 16)
	go readInput(d.in, d.input)

	d.w.WriteString(ansi.HideCursor)
	d.w.WriteString(ansi.EraseEntireScreen)
	log.Printf("Configured terminal display %dx%d cells", cols, rows)
	return d.w.Flush()
}

func (d *Display) size() (int, int) {
	if term.IsTerminal(int(d.out.Fd())) {
		if w, h, err := term.GetSize(int(d.out.Fd())); err == nil {
			// the last row stays free so the repaint never scrolls
			return w, h - 1
		}
	}
	return d.settings.Width, d.settings.Height
}

// readInput runs until in is closed. Chunks are dropped when frames are not consuming
// them fast enough.
func readInput(in io.Reader, ch chan<- []byte) {
	buf := make([]byte, 64)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case ch <- chunk:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

func (d *Display) drain(events []display.Event) []display.Event {
	for {
		select {
		case chunk := <-d.input:
			events = parseInput(chunk, events)
		default:
			return events
		}
	}
}

func (d *Display) Run(frame display.FrameFunc) error {
	if d.grid == nil {
		return errors.New("terminal display used before Setup")
	}
	interval := time.Duration(d.settings.FrameIntervalMs()) * time.Millisecond
	canvas := &termCanvas{grid: d.grid}
	delta := 1.0 / 60
	var events []display.Event
	for {
		start := time.Now()
		events = d.drain(events[:0])

		d.grid.Resize(d.size())
		d.grid.Clear()
		if err := frame(canvas, events, delta); err != nil {
			if display.IsQuit(err) {
				return nil
			}
			return err
		}
		if err := d.paint(); err != nil {
			return err
		}

		time.Sleep(interval - time.Since(start))
		delta = time.Since(start).Seconds()
	}
}

func (d *Display) paint() error {
	d.w.WriteString(ansi.CursorHomePosition)
	// raw mode does not translate \n, every row needs an explicit carriage return
	d.w.WriteString(strings.Join(d.grid.Lines(), "\r\n"))
	return errors.Wrap(d.w.Flush(), "failed to write frame")
}

func (d *Display) Close() error {
	if d.w != nil {
		d.w.WriteString(ansi.EraseEntireScreen)
		d.w.WriteString(ansi.CursorHomePosition)
		d.w.WriteString(ansi.ShowCursor)
		d.w.Flush()
	}
	if d.oldState != nil {
		if err := term.Restore(int(d.in.Fd()), d.oldState); err != nil {
			return errors.Wrap(err, "failed to restore terminal state")
		}
		d.oldState = nil
	}
	return nil
}

// termCanvas picks a character per draw color since the grid has no colors.
type termCanvas struct {
	grid *Grid
}

func (c *termCanvas) SetDrawColor(col color.RGBA) {
	switch {
	case col.R > col.G && col.R > col.B:
		c.grid.SetInk('*')
	case col.G > col.R && col.G > col.B:
		c.grid.SetInk('+')
	case col.B > col.R && col.B > col.G:
		c.grid.SetInk('o')
	default:
		c.grid.SetInk('#')
	}
}

func (c *termCanvas) DrawLine(a, b vm.Vec2) error {
	return c.grid.DrawLine(a, b)
}

func (c *termCanvas) Size() (int, int) {
	return c.grid.Size()
}
