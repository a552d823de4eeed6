package mesh

// Attr represents a single text attribute a cell can toggle.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrItalic
	AttrUnderline
	AttrInverse
)

// Has returns true if the attribute set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attr) With(attr Attr) Attr {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attr) Without(attr Attr) Attr {
	return a &^ attr
}

// Style is a set of text attributes applied to a written run. The zero
// value is plain text. Styles compose by bitwise OR, so the order the
// builder methods are called in doesn't matter.
type Style uint8

// NewStyle returns an empty style.
func NewStyle() Style {
	return 0
}

// Bold returns a new style with bold enabled.
func (s Style) Bold() Style {
	return s | Style(AttrBold)
}

// Italic returns a new style with italic enabled.
func (s Style) Italic() Style {
	return s | Style(AttrItalic)
}

// Underline returns a new style with underline enabled.
func (s Style) Underline() Style {
	return s | Style(AttrUnderline)
}

// Inverse returns a new style with inverse enabled.
func (s Style) Inverse() Style {
	return s | Style(AttrInverse)
}

// With returns the union of two styles.
func (s Style) With(other Style) Style {
	return s | other
}

// Has returns true if the style contains the given attribute.
func (s Style) Has(attr Attr) bool {
	return Attr(s).Has(attr)
}

// offShift moves a style's attribute bits into the OFF nibble of a
// cell's transition field.
const offShift = 4

// sgrCodes lists the escape sequences for each attribute in the fixed
// emission order: bold, italic, underline, inverse.
var sgrCodes = [...]struct {
	attr Attr
	on   string
	off  string
}{
	{AttrBold, "\x1b[1m", "\x1b[22m"},
	{AttrItalic, "\x1b[3m", "\x1b[23m"},
	{AttrUnderline, "\x1b[4m", "\x1b[24m"},
	{AttrInverse, "\x1b[7m", "\x1b[27m"},
}

// sgrReset clears every active attribute.
const sgrReset = "\x1b[0m"
