package mesh

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Screen owns the terminal for the duration of a session: raw mode,
// the alternate screen, and presenting rendered canvases. It knows
// nothing about widgets; the canvas is the only thing it displays.
type Screen struct {
	writer io.Writer
	fd     int

	origTermios *unix.Termios
	inRawMode   bool

	buf bytes.Buffer
}

// NewScreen creates a screen writing to the given writer. Pass nil to
// use os.Stdout.
func NewScreen(w io.Writer) *Screen {
	if w == nil {
		w = os.Stdout
	}
	return &Screen{
		writer: w,
		fd:     int(os.Stdout.Fd()),
	}
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(s.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// EnterRawMode puts the terminal into raw mode, switches to the
// alternate screen and hides the cursor.
func (s *Screen) EnterRawMode() error {
	if s.inRawMode {
		return nil
	}

	termios, err := unix.IoctlGetTermios(s.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	s.origTermios = termios

	raw := *termios
	// Input flags: disable break, CR to NL, parity, strip, flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output flags: disable post processing
	raw.Oflag &^= unix.OPOST
	// Control flags: set 8 bit chars
	raw.Cflag |= unix.CS8
	// Local flags: disable echo, canonical mode, signals, extended input
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	s.inRawMode = true

	s.writeString("\x1b[?1049h") // Enter alternate screen
	s.writeString("\x1b[2J")     // Clear screen
	s.writeString("\x1b[H")      // Move cursor to home position
	s.writeString("\x1b[?25l")   // Hide cursor

	return nil
}

// ExitRawMode restores the terminal to its original state.
func (s *Screen) ExitRawMode() error {
	if !s.inRawMode {
		return nil
	}

	s.writeString("\x1b[?25h")   // Show cursor
	s.writeString("\x1b[?1049l") // Exit alternate screen

	if s.origTermios != nil {
		if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, s.origTermios); err != nil {
			return fmt.Errorf("failed to restore termios: %w", err)
		}
	}

	s.inRawMode = false
	return nil
}

// Present writes the canvas to the terminal, positioning each row
// explicitly so the output is correct in raw mode (where a bare line
// feed doesn't return the carriage).
func (s *Screen) Present(c *Canvas) error {
	s.buf.Reset()
	for y := 0; y < c.Height(); y++ {
		fmt.Fprintf(&s.buf, "\x1b[%d;1H", y+1)
		c.RenderRow(&s.buf, y)
	}
	_, err := s.writer.Write(s.buf.Bytes())
	return err
}

func (s *Screen) writeString(str string) {
	io.WriteString(s.writer, str)
}
