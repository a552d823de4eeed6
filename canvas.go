package mesh

import (
	"bytes"
	"io"
)

// Cell is a single character cell on the canvas. Alongside its rune it
// carries an 8-bit style transition field: the low nibble holds the
// attributes switched ON entering the cell, the high nibble the
// attributes switched OFF after it. A zero field emits no escape codes
// at all, so the cell inherits whatever styles are active from earlier
// cells in the same row.
type Cell struct {
	Rune  rune
	flags uint8
}

// On returns the attributes switched on entering the cell.
func (c Cell) On() Style {
	return Style(c.flags & 0x0f)
}

// Off returns the attributes switched off after the cell.
func (c Cell) Off() Style {
	return Style(c.flags >> offShift)
}

// Canvas is a fixed-size grid of styled character cells. It is created
// once with a fill rune, mutated in place by writes, and never resized.
// Style transitions are encoded only at run boundaries, so rendering
// cost is proportional to the number of style changes rather than the
// number of styled characters, and independently-issued writes can
// share a row without clobbering each other's runs.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// NewCanvas creates a canvas of the given dimensions filled with the
// given rune.
func NewCanvas(width, height int, filler rune) *Canvas {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Rune: filler}
	}
	return &Canvas{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the canvas width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// InBounds returns true if the given coordinates are within the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// index converts x,y coordinates to a slice index.
func (c *Canvas) index(x, y int) int {
	return y*c.width + x
}

// Get returns the cell at the given coordinates and whether the
// coordinates are in bounds.
func (c *Canvas) Get(x, y int) (Cell, bool) {
	if !c.InBounds(x, y) {
		return Cell{}, false
	}
	return c.cells[c.index(x, y)], true
}

// Text writes a string starting at (x, y). A newline resets the write
// position to column x of the next row. Runes that would land at or
// beyond the right edge are dropped until the next newline; once the
// position passes the bottom edge the remaining input is ignored.
// The style's ON bits are OR'd into the first written cell of each line
// segment that receives a rune, and its OFF bits into the last, so
// overlapping writes combine rather than overwrite. A starting position
// outside the canvas is a no-op.
func (c *Canvas) Text(s string, x, y int, style Style) {
	if !c.InBounds(x, y) {
		return
	}

	on := uint8(style) & 0x0f
	off := on << offShift

	cx, cy := x, y
	segFirst, segLast := -1, -1

	closeSegment := func() {
		if segFirst >= 0 {
			c.cells[segFirst].flags |= on
			c.cells[segLast].flags |= off
		}
		segFirst, segLast = -1, -1
	}

	for _, r := range s {
		if r == '\n' {
			closeSegment()
			cx = x
			cy++
			continue
		}
		if cy >= c.height {
			// The position only ever moves down, so nothing further
			// can land on the canvas.
			break
		}
		if cx < c.width {
			i := c.index(cx, cy)
			c.cells[i].Rune = r
			if segFirst < 0 {
				segFirst = i
			}
			segLast = i
		}
		cx++
	}
	closeSegment()
}

// PaddedLine writes length copies of a fill rune starting at (x, y),
// clipped to the canvas width. The style's ON and OFF bits land on the
// first and last cell of the clipped run, same rule as Text. Starting
// outside the canvas is a no-op.
func (c *Canvas) PaddedLine(pad rune, x, y, length int, style Style) {
	if length <= 0 || !c.InBounds(x, y) {
		return
	}
	end := x + length
	if end > c.width {
		end = c.width
	}

	first := c.index(x, y)
	last := c.index(end-1, y)
	for i := first; i <= last; i++ {
		c.cells[i].Rune = pad
	}

	on := uint8(style) & 0x0f
	c.cells[first].flags |= on
	c.cells[last].flags |= on << offShift
}

// RenderRow appends one escape-coded row to buf, without a trailing
// line break. Cells with a zero transition field emit only their rune;
// otherwise ON codes are emitted before the rune and OFF codes after
// it, each in the fixed order bold, italic, underline, inverse. The row
// always ends with a full style reset so no style bleeds into the next
// row regardless of unmatched ON/OFF pairs.
func (c *Canvas) RenderRow(buf *bytes.Buffer, y int) {
	row := c.cells[y*c.width : (y+1)*c.width]
	for _, cell := range row {
		if cell.flags == 0 {
			buf.WriteRune(cell.Rune)
			continue
		}
		for _, sgr := range sgrCodes {
			if cell.flags&uint8(sgr.attr) != 0 {
				buf.WriteString(sgr.on)
			}
		}
		buf.WriteRune(cell.Rune)
		for _, sgr := range sgrCodes {
			if cell.flags&(uint8(sgr.attr)<<offShift) != 0 {
				buf.WriteString(sgr.off)
			}
		}
	}
	buf.WriteString(sgrReset)
}

// Render writes the whole canvas as escape-coded rows, one per line.
func (c *Canvas) Render(w io.Writer) error {
	var buf bytes.Buffer
	for y := 0; y < c.height; y++ {
		buf.Reset()
		c.RenderRow(&buf, y)
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// String returns the rendered canvas.
func (c *Canvas) String() string {
	var buf bytes.Buffer
	c.Render(&buf)
	return buf.String()
}
