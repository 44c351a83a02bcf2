package editor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/bulga138/cellpad/buffer"
	"github.com/bulga138/cellpad/config"
	"github.com/bulga138/cellpad/fileio"
	"github.com/bulga138/cellpad/input"
	"github.com/bulga138/cellpad/render"
	"github.com/bulga138/cellpad/runewidth"
)

const (
	fallbackRows = 24
	fallbackCols = 80
)

// ErrNoFilename is returned by Save when the editor was started without a
// file to write to.
var ErrNoFilename = errors.New("no filename")

// Screen is what the editor needs from a terminal backend.
type Screen interface {
	Init() error
	Fini()
	Size() (rows, cols int, err error)
	ReadCommand() (input.Command, error)
	Draw(frame render.Frame) error
}

type Editor struct {
	screen   Screen
	buf      *buffer.LineBuffer
	config   config.Config
	filename string
	rows     int
	cols     int

	// cursor is in character coordinates; offset is the first buffer row
	// on screen.
	cursor buffer.Position
	offset int

	dirty         bool
	initialHash   string
	statusMessage string
	statusTime    time.Time
	quit          bool
}

// NewEditor loads file (if any) and sizes the editor to screen. A file
// that cannot be read opens as an empty document; saving writes it anew.
func NewEditor(screen Screen, cfg config.Config, file string) (*Editor, error) {
	var content string
	if file != "" {
		var ok bool
		if content, ok = fileio.Load(file); !ok {
			log.Printf("editor: starting %q as an empty document", file)
		}
	}
	return newEditor(screen, cfg, file, content)
}

func newEditor(screen Screen, cfg config.Config, file, content string) (*Editor, error) {
	e := &Editor{
		screen:   screen,
		config:   cfg,
		filename: file,
		buf:      buffer.Load(content, runewidth.New(cfg.AmbiguousWide)),
	}
	e.initialHash = e.calculateBufferHash()
	if err := e.refreshSize(); err != nil {
		return nil, fmt.Errorf("query screen size: %w", err)
	}
	return e, nil
}

func (e *Editor) refreshSize() error {
	rows, cols, err := e.screen.Size()
	if err != nil {
		return err
	}
	if rows <= 0 || cols <= 0 {
		rows, cols = fallbackRows, fallbackCols
	}
	e.rows = rows
	e.cols = cols
	return nil
}

// Run takes over the screen and processes commands until Quit or the end
// of input. Drawing and input errors end the loop and are returned.
func (e *Editor) Run() error {
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer e.screen.Fini()

	for !e.quit {
		e.checkResize()
		if err := e.screen.Draw(e.Frame()); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		cmd, err := e.screen.ReadCommand()
		if err == io.EOF {
			log.Println("editor: input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		e.Apply(cmd)
	}
	return nil
}

func (e *Editor) checkResize() {
	rows, cols := e.rows, e.cols
	if err := e.refreshSize(); err != nil {
		log.Printf("editor: size: %v", err)
		return
	}
	if rows == e.rows && cols == e.cols {
		return
	}
	e.scroll()
	log.Printf("editor: window resized to %d x %d", e.cols, e.rows)
}

func (e *Editor) setStatusMessage(f string, a ...interface{}) {
	e.statusMessage = fmt.Sprintf(f, a...)
	e.statusTime = time.Now()
	log.Print(e.statusMessage)
}

func (e *Editor) Cursor() buffer.Position { return e.cursor }
func (e *Editor) Offset() int             { return e.offset }
func (e *Editor) Filename() string        { return e.filename }
func (e *Editor) Content() string         { return e.buf.Serialize() }

// StatusMessage returns the last status message and when it was set.
func (e *Editor) StatusMessage() (string, time.Time) {
	return e.statusMessage, e.statusTime
}

// Done reports whether a Quit command has been applied.
func (e *Editor) Done() bool { return e.quit }
