package mesh

import (
	"sort"
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	algo.Init("default")
}

var fzfSlab = util.MakeSlab(100*1024, 2048)

// fuzzyScore scores candidate against the (lowercased) pattern using
// fzf's V2 matcher. ok is false when the candidate doesn't match.
func fuzzyScore(candidate string, pattern []rune) (score int, ok bool) {
	chars := util.ToChars([]byte(candidate))
	result, _ := algo.FuzzyMatchV2(false, false, true, &chars, pattern, false, fzfSlab)
	if result.Start < 0 {
		return 0, false
	}
	return result.Score, true
}

// FilterList is a fuzzy-filterable list of strings. Printable input
// (other than the reserved direction keys) edits the query, backspace
// deletes, up/down move the cursor within the current matches and turn
// into move requests at the ends. Matches are ranked by fzf score; an
// empty query shows every item in source order.
type FilterList struct {
	Base
	items   []string
	query   []rune
	matches []int // indices into items, best first
	cursor  int   // index into matches
	width   int
	height  int // visible match rows, excluding the query line
}

// NewFilterList creates a filter list over the given items. The widget
// occupies width columns and height+1 rows: one query line plus height
// match rows.
func NewFilterList(items []string, width, height int) *FilterList {
	f := &FilterList{
		items:  items,
		width:  width,
		height: height,
	}
	f.refilter()
	return f
}

// Query returns the current query string.
func (f *FilterList) Query() string {
	return string(f.query)
}

// Selected returns the item under the cursor.
func (f *FilterList) Selected() (string, bool) {
	if f.cursor >= len(f.matches) {
		return "", false
	}
	return f.items[f.matches[f.cursor]], true
}

// Matches returns how many items match the current query.
func (f *FilterList) Matches() int {
	return len(f.matches)
}

func (f *FilterList) refilter() {
	f.matches = f.matches[:0]
	if len(f.query) == 0 {
		for i := range f.items {
			f.matches = append(f.matches, i)
		}
		f.clampCursor()
		return
	}

	pattern := []rune(strings.ToLower(string(f.query)))
	scores := make(map[int]int, len(f.items))
	for i, item := range f.items {
		if score, ok := fuzzyScore(item, pattern); ok {
			f.matches = append(f.matches, i)
			scores[i] = score
		}
	}
	sort.SliceStable(f.matches, func(a, b int) bool {
		return scores[f.matches[a]] > scores[f.matches[b]]
	})
	f.clampCursor()
}

func (f *FilterList) clampCursor() {
	if f.cursor >= len(f.matches) {
		f.cursor = len(f.matches) - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

func (f *FilterList) Respond(input rune) Response {
	switch input {
	case KeyUp:
		if f.cursor > 0 {
			f.cursor--
			return Handled()
		}
		return MoveUp()
	case KeyDown:
		if f.cursor < len(f.matches)-1 {
			f.cursor++
			return Handled()
		}
		return MoveDown()
	case KeyLeft:
		return MoveLeft()
	case KeyRight:
		return MoveRight()
	case '\b', 0x7f:
		if len(f.query) > 0 {
			f.query = f.query[:len(f.query)-1]
			f.refilter()
		}
		return Handled()
	}
	if unicode.IsPrint(input) {
		f.query = append(f.query, input)
		f.refilter()
		return Handled()
	}
	return Pass()
}

// EnterTop resets the cursor when focus arrives from above, EnterBottom
// when it arrives from below.
func (f *FilterList) EnterTop() {
	f.cursor = 0
}

func (f *FilterList) EnterBottom() {
	f.cursor = len(f.matches) - 1
	f.clampCursor()
}

func (f *FilterList) Draw(c *Canvas, x, y int, selected bool) {
	queryStyle := NewStyle().Underline()
	if selected {
		queryStyle = queryStyle.Bold()
	}
	paddedText(c, "/"+string(f.query), x, y, f.width, ' ', queryStyle)

	// Keep the cursor inside the visible window.
	top := 0
	if f.cursor >= f.height {
		top = f.cursor - f.height + 1
	}

	for row := 0; row < f.height; row++ {
		i := top + row
		line := ""
		style := NewStyle()
		if i < len(f.matches) {
			line = f.items[f.matches[i]]
			if i == f.cursor && selected {
				style = style.Inverse()
			}
		}
		paddedText(c, line, x, y+1+row, f.width, ' ', style)
	}
}
