package mesh

import "fmt"

// Handle is an opaque index identifying an entry to external callers.
// It carries no ownership and is only meaningful against the grid that
// issued it; a handle used against the wrong grid either fails with
// InvalidHandleError (wiring) or is silently ignored (alerts). Handles
// must not be retained past their grid's lifetime.
type Handle int

// InvalidHandleError reports a handle that does not resolve to a live
// entry in the grid it was used against.
type InvalidHandleError struct {
	Handle Handle
}

func (e InvalidHandleError) Error() string {
	return fmt.Sprintf("handle %d does not resolve to a grid entry", int(e.Handle))
}

// Seed entry indices. Every grid is constructed with these two entries.
const (
	topLeftIdx     = 0
	bottomRightIdx = 1
)

// entry is one child's slot: the element, its draw offset, and its four
// neighbor links. Neighbors are indices into the owning grid's own
// store (-1 for none), never pointers, so a child's response can be
// copied out before any second entry is touched.
type entry struct {
	elem Element
	x, y int

	up, down, left, right int
}

// Grid wires elements into a navigable mesh: an ordered entry store
// (never reordered or compacted, so handles stay stable for the grid's
// lifetime) plus one focus index. It mediates focus transfer, response
// bubbling and cross-widget alerts, and implements Element itself so
// grids nest.
type Grid struct {
	entries []entry
	focus   int
}

// NewGrid creates a grid seeded with a top-left and a bottom-right
// element at the given offsets. Focus starts on the top-left entry.
// The two seeds are also where focus lands when the grid itself is
// entered from an edge.
func NewGrid(topLeft Element, tlX, tlY int, bottomRight Element, brX, brY int) *Grid {
	g := &Grid{entries: make([]entry, 0, 2)}
	g.push(topLeft, tlX, tlY)
	g.push(bottomRight, brX, brY)
	return g
}

func (g *Grid) push(e Element, x, y int) Handle {
	g.entries = append(g.entries, entry{
		elem: e,
		x:    x,
		y:    y,
		up:   -1, down: -1, left: -1, right: -1,
	})
	return Handle(len(g.entries) - 1)
}

// TopLeft returns the handle of the top-left seed entry.
func (g *Grid) TopLeft() Handle {
	return topLeftIdx
}

// BottomRight returns the handle of the bottom-right seed entry.
func (g *Grid) BottomRight() Handle {
	return bottomRightIdx
}

// Add appends an element at the given draw offset and returns its
// handle. Entries cannot be removed.
func (g *Grid) Add(e Element, x, y int) Handle {
	return g.push(e, x, y)
}

// Len returns the number of entries.
func (g *Grid) Len() int {
	return len(g.entries)
}

func (g *Grid) resolves(h Handle) bool {
	return h >= 0 && int(h) < len(g.entries)
}

// ConnectUpDown sets up's down-neighbor to down and down's up-neighbor
// to up, overwriting any prior link in those slots. Connections are
// directed: nothing beyond these two links is established.
func (g *Grid) ConnectUpDown(up, down Handle) error {
	if !g.resolves(up) {
		return InvalidHandleError{up}
	}
	if !g.resolves(down) {
		return InvalidHandleError{down}
	}
	g.entries[up].down = int(down)
	g.entries[down].up = int(up)
	return nil
}

// ConnectLeftRight sets left's right-neighbor to right and right's
// left-neighbor to left, overwriting any prior link in those slots.
func (g *Grid) ConnectLeftRight(left, right Handle) error {
	if !g.resolves(left) {
		return InvalidHandleError{left}
	}
	if !g.resolves(right) {
		return InvalidHandleError{right}
	}
	g.entries[left].right = int(right)
	g.entries[right].left = int(left)
	return nil
}

// Focused returns the handle of the currently focused entry.
func (g *Grid) Focused() Handle {
	return Handle(g.focus)
}

// Draw renders every entry at the grid's offset plus the entry's own.
// An entry draws as selected only when it holds focus and the grid
// itself is selected, so a non-selected ancestor suppresses selection
// visuals everywhere below it.
func (g *Grid) Draw(c *Canvas, x, y int, selected bool) {
	for i := range g.entries {
		en := &g.entries[i]
		en.elem.Draw(c, x+en.x, y+en.y, selected && i == g.focus)
	}
}

// Advance forwards the frame commit to every entry unconditionally.
func (g *Grid) Advance() {
	for i := range g.entries {
		g.entries[i].elem.Advance()
	}
}

// DrawAdvance draws every entry and commits the frame in one pass,
// treating the grid as the root of the tree.
func (g *Grid) DrawAdvance(c *Canvas) {
	for i := range g.entries {
		en := &g.entries[i]
		DrawAdvance(en.elem, c, en.x, en.y, i == g.focus)
	}
}

// Entering the grid from an edge re-seeds focus to the matching corner
// entry before forwarding the hook, so navigation into a nested grid
// lands somewhere sensible.

func (g *Grid) EnterTop() {
	g.focus = topLeftIdx
	g.entries[g.focus].elem.EnterTop()
}

func (g *Grid) EnterBottom() {
	g.focus = bottomRightIdx
	g.entries[g.focus].elem.EnterBottom()
}

func (g *Grid) EnterLeft() {
	g.focus = topLeftIdx
	g.entries[g.focus].elem.EnterLeft()
}

func (g *Grid) EnterRight() {
	g.focus = bottomRightIdx
	g.entries[g.focus].elem.EnterRight()
}

func (g *Grid) Alert() []Handle {
	return nil
}

// Respond delivers the input to the focused entry and acts on its
// verdict. Handled and pass-through verdicts are returned unchanged. A
// move request consumes a neighbor edge if one exists (firing the
// destination's opposite-edge entry hook) or bubbles out unresolved so
// an ancestor grid can try. An alert list is delivered to every target
// that resolves in this grid, recursively following the handles each
// Alert call returns; unresolved targets are dropped. A cycle among
// alert targets recurses without bound: that is a logic bug in the
// widgets naming each other, not something the grid detects.
func (g *Grid) Respond(input rune) Response {
	// The child's verdict is copied out as a value before the grid
	// mutates any entry, including the child itself.
	resp := g.entries[g.focus].elem.Respond(input)

	switch resp.Verdict {
	case VerdictMoveUp:
		return g.moveUp()
	case VerdictMoveDown:
		return g.moveDown()
	case VerdictMoveLeft:
		return g.moveLeft()
	case VerdictMoveRight:
		return g.moveRight()
	case VerdictAlert:
		g.alertAll(resp.Targets)
		return Handled()
	}
	return resp
}

func (g *Grid) moveUp() Response {
	next := g.entries[g.focus].up
	if next < 0 {
		return MoveUp()
	}
	g.focus = next
	g.entries[g.focus].elem.EnterBottom()
	return Handled()
}

func (g *Grid) moveDown() Response {
	next := g.entries[g.focus].down
	if next < 0 {
		return MoveDown()
	}
	g.focus = next
	g.entries[g.focus].elem.EnterTop()
	return Handled()
}

func (g *Grid) moveLeft() Response {
	next := g.entries[g.focus].left
	if next < 0 {
		return MoveLeft()
	}
	g.focus = next
	g.entries[g.focus].elem.EnterRight()
	return Handled()
}

func (g *Grid) moveRight() Response {
	next := g.entries[g.focus].right
	if next < 0 {
		return MoveRight()
	}
	g.focus = next
	g.entries[g.focus].elem.EnterLeft()
	return Handled()
}

// alertAll notifies every resolvable target, breadth-first, following
// the further handles each Alert call returns until none are produced.
func (g *Grid) alertAll(targets []Handle) {
	queue := append([]Handle(nil), targets...)
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if !g.resolves(h) {
			// Best-effort delivery: handles from an inner grid aren't
			// visible here and are simply dropped.
			continue
		}
		queue = append(queue, g.entries[h].elem.Alert()...)
	}
}
