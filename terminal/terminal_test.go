package terminal

import (
	"bytes"
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulga138/cellpad/buffer"
	"github.com/bulga138/cellpad/input"
	"github.com/bulga138/cellpad/render"
)

// mockTerminal is a test implementation of the Terminal interface
type mockTerminal struct {
	width, height int
	sizeErr       error
	rawErr        error
	raw           bool
	stdin         io.Reader
}

func (m *mockTerminal) EnableRawMode() error {
	if m.rawErr != nil {
		return m.rawErr
	}
	m.raw = true
	return nil
}

func (m *mockTerminal) DisableRawMode() error {
	m.raw = false
	return nil
}

func (m *mockTerminal) GetWindowSize() (int, int, error) {
	return m.width, m.height, m.sizeErr
}

func (m *mockTerminal) Stdin() io.Reader { return m.stdin }
func (m *mockTerminal) Close() error     { return nil }

func newMockTerminal(keys string) *mockTerminal {
	return &mockTerminal{width: 80, height: 24, stdin: strings.NewReader(keys)}
}

func TestANSIScreen_Lifecycle(t *testing.T) {
	term := newMockTerminal("")
	var out bytes.Buffer
	s := NewANSIScreen(term, &out)

	require.NoError(t, s.Init())
	assert.True(t, term.raw)
	assert.Contains(t, out.String(), ansiEnterAltScreen)

	s.Fini()
	assert.False(t, term.raw)
	assert.True(t, strings.HasSuffix(out.String(), ansiExitAltScreen))
}

func TestANSIScreen_InitFails(t *testing.T) {
	term := newMockTerminal("")
	term.rawErr = errors.New("not a tty")
	var out bytes.Buffer

	err := NewANSIScreen(term, &out).Init()
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestANSIScreen_Size(t *testing.T) {
	term := newMockTerminal("")
	s := NewANSIScreen(term, io.Discard)

	rows, cols, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 24, rows)
	assert.Equal(t, 80, cols)

	term.width, term.height = 120, 40
	rows, cols, _ = s.Size()
	assert.Equal(t, 40, rows)
	assert.Equal(t, 120, cols)

	term.sizeErr = errors.New("ioctl failed")
	rows, cols, err = s.Size()
	require.NoError(t, err)
	assert.Equal(t, fallbackHeight, rows)
	assert.Equal(t, fallbackWidth, cols)
}

func TestANSIScreen_ReadAndDraw(t *testing.T) {
	term := newMockTerminal("x\x1b[A\x11")
	var out bytes.Buffer
	s := NewANSIScreen(term, &out)

	var got []input.Command
	for {
		c, err := s.ReadCommand()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, c)
	}
	assert.Equal(t, []input.Command{input.Insert('x'), {Kind: input.MoveUp}, {Kind: input.Quit}}, got)

	frame := render.Render(buffer.Load("hi", nil), buffer.Position{Col: 2}, 0, 24, 80)
	require.NoError(t, s.Draw(frame))
	assert.Contains(t, out.String(), "hi\x1b[1;3H")
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	return tcell.NewSimulationScreen("UTF-8")
}

// nextKey skips the Unknown commands produced by resize events.
func nextKey(t *testing.T, s *TcellScreen) input.Command {
	t.Helper()
	for {
		c, err := s.ReadCommand()
		require.NoError(t, err)
		if c.Kind != input.Unknown {
			return c
		}
	}
}

func TestTcellScreen(t *testing.T) {
	sim := newSimScreen(t)
	s := NewTcellScreen(sim, nil)
	require.NoError(t, s.Init())
	defer s.Fini()
	sim.SetSize(30, 5)

	rows, cols, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 5, rows)
	assert.Equal(t, 30, cols)

	sim.InjectKey(tcell.KeyRune, '世', tcell.ModNone)
	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	assert.Equal(t, input.Insert('世'), nextKey(t, s))
	assert.Equal(t, input.Command{Kind: input.MoveDown}, nextKey(t, s))
	assert.Equal(t, input.Insert('\n'), nextKey(t, s))

	frame := render.Render(buffer.Load("世x", nil), buffer.Position{Col: 1}, 0, rows, cols)
	require.NoError(t, s.Draw(frame))

	cells, width, _ := sim.GetContents()
	assert.Equal(t, []rune{'世'}, cells[0].Runes)
	assert.Equal(t, []rune{'x'}, cells[2].Runes)
	x, y, _ := sim.GetCursor()
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 30, width)
}

func TestTcellScreen_Resize(t *testing.T) {
	sim := newSimScreen(t)
	s := NewTcellScreen(sim, nil)
	require.NoError(t, s.Init())
	defer s.Fini()

	require.NoError(t, sim.PostEvent(tcell.NewEventResize(50, 10)))
	c, err := s.ReadCommand()
	require.NoError(t, err)
	assert.Equal(t, input.Unknown, c.Kind)
}

func TestTcellScreen_EOFAfterFini(t *testing.T) {
	sim := newSimScreen(t)
	s := NewTcellScreen(sim, nil)
	require.NoError(t, s.Init())
	s.Fini()

	_, err := s.ReadCommand()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStdTerminal_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	term := &stdTerminal{in: r, out: w}
	assert.ErrorIs(t, term.EnableRawMode(), ErrNotTerminal)
	assert.NoError(t, term.DisableRawMode())

	if runtime.GOOS != "windows" {
		// windows falls back to CONOUT$, which may exist.
		_, _, err = term.GetWindowSize()
		assert.Error(t, err)
	}
	assert.Equal(t, r, term.Stdin())
	assert.NoError(t, term.Close())
}

func TestStdTerminal_RestoresOnce(t *testing.T) {
	calls := 0
	term := &stdTerminal{restore: func() error { calls++; return errors.New("gone") }}

	assert.Error(t, term.DisableRawMode())
	assert.NoError(t, term.DisableRawMode())
	assert.Equal(t, 1, calls)
}
