package mesh

// Reserved direction keys, vi-style.
const (
	KeyUp    rune = 'k'
	KeyDown  rune = 'j'
	KeyLeft  rune = 'h'
	KeyRight rune = 'l'
)

// Verdict classifies a widget's reaction to one input symbol.
type Verdict uint8

const (
	// VerdictPass means the input wasn't recognized; an ancestor may
	// still apply its own default interpretation.
	VerdictPass Verdict = iota
	// VerdictHandled means the input was consumed internally.
	VerdictHandled
	// VerdictMove* ask the enclosing grid to shift focus.
	VerdictMoveUp
	VerdictMoveDown
	VerdictMoveLeft
	VerdictMoveRight
	// VerdictAlert asks the enclosing grid to notify the listed entries.
	VerdictAlert
)

// Response is the verdict a widget returns from Respond, plus the alert
// targets when the verdict is VerdictAlert. It is a plain value: a grid
// copies it out of a child before mutating anything else, so no two
// live views of the entry store ever coexist.
type Response struct {
	Verdict Verdict
	Targets []Handle
}

// Pass reports that the input wasn't recognized.
func Pass() Response {
	return Response{Verdict: VerdictPass}
}

// Handled reports that the input was consumed internally.
func Handled() Response {
	return Response{Verdict: VerdictHandled}
}

// MoveUp requests a focus move upward.
func MoveUp() Response {
	return Response{Verdict: VerdictMoveUp}
}

// MoveDown requests a focus move downward.
func MoveDown() Response {
	return Response{Verdict: VerdictMoveDown}
}

// MoveLeft requests a focus move to the left.
func MoveLeft() Response {
	return Response{Verdict: VerdictMoveLeft}
}

// MoveRight requests a focus move to the right.
func MoveRight() Response {
	return Response{Verdict: VerdictMoveRight}
}

// Notify requests that the listed entries be alerted.
func Notify(targets ...Handle) Response {
	return Response{Verdict: VerdictAlert, Targets: targets}
}

// DefaultRespond maps the reserved direction keys to move requests and
// everything else to pass-through.
func DefaultRespond(input rune) Response {
	switch input {
	case KeyUp:
		return MoveUp()
	case KeyDown:
		return MoveDown()
	case KeyLeft:
		return MoveLeft()
	case KeyRight:
		return MoveRight()
	}
	return Pass()
}

// Element is the capability contract every UI node implements. Grids
// implement it too, so containers nest arbitrarily.
type Element interface {
	// Draw renders the current state at the given offset. It must be
	// safe to call repeatedly without changing state.
	Draw(c *Canvas, x, y int, selected bool)

	// Advance commits the end of a frame.
	Advance()

	// Respond interprets one input symbol.
	Respond(input rune) Response

	// Enter* hooks fire when the element becomes focused by a move
	// arriving over that edge: moving down enters over the top edge and
	// fires EnterTop, moving right fires EnterLeft, and so on.
	EnterTop()
	EnterBottom()
	EnterLeft()
	EnterRight()

	// Alert fires when another widget names this one in a broadcast.
	// Returned handles are further targets to notify, letting
	// dependency-style updates cascade without a central event bus.
	Alert() []Handle
}

// Base provides the default element behaviors: no-op frame commit,
// entry hooks and alert, and direction-key handling via DefaultRespond.
// Embed it and override what the widget actually needs; Draw is the
// only method a widget must supply itself.
type Base struct{}

func (Base) Advance() {}

func (Base) Respond(input rune) Response {
	return DefaultRespond(input)
}

func (Base) EnterTop()    {}
func (Base) EnterBottom() {}
func (Base) EnterLeft()   {}
func (Base) EnterRight()  {}

func (Base) Alert() []Handle {
	return nil
}

// DrawAdvance draws an element and commits its frame in one step.
func DrawAdvance(e Element, c *Canvas, x, y int, selected bool) {
	e.Draw(c, x, y, selected)
	e.Advance()
}
