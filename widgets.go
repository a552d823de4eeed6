package mesh

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Label is a static line of text. When selected it draws with inverse
// added to its style.
type Label struct {
	Base
	text  string
	style Style
}

// NewLabel creates a label with the given text and style.
func NewLabel(text string, style Style) *Label {
	return &Label{text: text, style: style}
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

func (l *Label) Draw(c *Canvas, x, y int, selected bool) {
	st := l.style
	if selected {
		st = st.Inverse()
	}
	c.Text(l.text, x, y, st)
}

// TextScroller shows a fixed-size window onto a block of lines.
// Up/down scroll within the content and turn into move requests at the
// ends; left/right always move.
type TextScroller struct {
	Base
	lines  []string
	width  int
	height int
	window int
}

// NewTextScroller creates a scroller over the given text clipped to a
// width-by-height window. Lines are pre-truncated by display width so
// double-width runes never straddle the clipping edge.
func NewTextScroller(text string, width, height int) *TextScroller {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = runewidth.Truncate(l, width, "")
	}
	return &TextScroller{
		lines:  lines,
		width:  width,
		height: height,
	}
}

// ScrollUp moves the window up one line, or requests a focus move when
// already at the top.
func (t *TextScroller) ScrollUp() Response {
	if t.window > 0 {
		t.window--
		return Handled()
	}
	return MoveUp()
}

// ScrollDown moves the window down one line, or requests a focus move
// when the last line is already visible.
func (t *TextScroller) ScrollDown() Response {
	if t.window+t.height < len(t.lines) {
		t.window++
		return Handled()
	}
	return MoveDown()
}

// Window returns the index of the first visible line.
func (t *TextScroller) Window() int {
	return t.window
}

func (t *TextScroller) Respond(input rune) Response {
	switch input {
	case KeyUp:
		return t.ScrollUp()
	case KeyDown:
		return t.ScrollDown()
	case KeyLeft:
		return MoveLeft()
	case KeyRight:
		return MoveRight()
	}
	return Pass()
}

func (t *TextScroller) Draw(c *Canvas, x, y int, _ bool) {
	if len(t.lines) < t.height {
		for i, l := range t.lines {
			c.Text(l, x, y+i, NewStyle())
		}
		return
	}
	for i, l := range t.lines[t.window : t.window+t.height] {
		// Padded so rows left over from the previous window position
		// are overwritten.
		paddedText(c, l, x, y+i, t.width, ' ', NewStyle())
	}
}

// paddedText writes a line truncated to width display columns and fills
// the remainder with the pad rune.
func paddedText(c *Canvas, s string, x, y, width int, pad rune, style Style) {
	s = runewidth.Truncate(s, width, "")
	c.Text(s, x, y, style)
	n := runewidth.StringWidth(s)
	if n < width {
		c.PaddedLine(pad, x+n, y, width-n, style)
	}
}
