package mesh

// Updater wraps an element with a "changed since the last commit" bit
// so unchanged widgets can skip their redraw. Draw forwards only while
// the bit is set; Advance forwards and then clears it. Any Respond that
// returns something other than pass-through, any entry hook and any
// Alert set the bit before forwarding, which makes the bit a
// conservative signal: it may over-report (an alert that changes
// nothing visible still marks the widget) but never under-reports.
type Updater[E Element] struct {
	inner   E
	updated bool
}

// NewUpdater wraps the given element. The bit starts set so the first
// frame always draws.
func NewUpdater[E Element](inner E) *Updater[E] {
	return &Updater[E]{inner: inner, updated: true}
}

// Inner returns the wrapped element.
func (u *Updater[E]) Inner() E {
	return u.inner
}

// Updated returns the current state of the dirty bit.
func (u *Updater[E]) Updated() bool {
	return u.updated
}

// Touch sets the dirty bit, forcing a redraw on the next frame.
func (u *Updater[E]) Touch() {
	u.updated = true
}

func (u *Updater[E]) Draw(c *Canvas, x, y int, selected bool) {
	if u.updated {
		u.inner.Draw(c, x, y, selected)
	}
}

func (u *Updater[E]) Advance() {
	u.inner.Advance()
	u.updated = false
}

func (u *Updater[E]) Respond(input rune) Response {
	resp := u.inner.Respond(input)
	if resp.Verdict != VerdictPass {
		u.updated = true
	}
	return resp
}

func (u *Updater[E]) EnterTop() {
	u.updated = true
	u.inner.EnterTop()
}

func (u *Updater[E]) EnterBottom() {
	u.updated = true
	u.inner.EnterBottom()
}

func (u *Updater[E]) EnterLeft() {
	u.updated = true
	u.inner.EnterLeft()
}

func (u *Updater[E]) EnterRight() {
	u.updated = true
	u.inner.EnterRight()
}

func (u *Updater[E]) Alert() []Handle {
	u.updated = true
	return u.inner.Alert()
}
