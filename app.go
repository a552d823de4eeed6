package mesh

import (
	"os"

	"github.com/kungfusheep/riffkey"
)

// App drives a widget tree from keyboard input: riffkey routes key
// patterns, each dispatched key feeds the root element, and the canvas
// is re-presented after every dispatch. Everything is synchronous; a
// response runs to completion before the next key is read.
type App struct {
	screen *Screen
	canvas *Canvas
	root   Element

	router *riffkey.Router
	input  *riffkey.Input
	reader *riffkey.Reader

	running bool
}

// NewApp creates an app around a root element and a canvas of the given
// size. The four direction keys are pre-bound to feed the root.
func NewApp(root Element, width, height int, filler rune) *App {
	router := riffkey.NewRouter()
	a := &App{
		screen: NewScreen(nil),
		canvas: NewCanvas(width, height, filler),
		root:   root,
		router: router,
		input:  riffkey.NewInput(router),
		reader: riffkey.NewReader(os.Stdin),
	}

	for _, key := range []rune{KeyUp, KeyDown, KeyLeft, KeyRight} {
		key := key
		router.Handle(string(key), func(riffkey.Match) {
			a.Send(key)
		})
	}

	return a
}

// Canvas returns the app's canvas.
func (a *App) Canvas() *Canvas {
	return a.canvas
}

// Screen returns the app's screen.
func (a *App) Screen() *Screen {
	return a.screen
}

// Handle registers a key binding with a vim-style pattern.
// Examples: "q", "<C-c>", "<BS>".
func (a *App) Handle(pattern string, handler func(riffkey.Match)) *App {
	a.router.Handle(pattern, handler)
	return a
}

// Send delivers one input symbol to the root element. A move request
// that bubbles all the way out has no edge left to cross and is
// dropped.
func (a *App) Send(input rune) {
	a.root.Respond(input)
}

// Stop ends the run loop.
func (a *App) Stop() {
	a.running = false
	// Close stdin to unblock the reader
	os.Stdin.Close()
}

// render draws the tree, commits the frame and presents the canvas.
func (a *App) render() {
	DrawAdvance(a.root, a.canvas, 0, 0, true)
	a.screen.Present(a.canvas)
}

// Run enters raw mode and processes input until Stop is called.
func (a *App) Run() error {
	a.running = true

	if err := a.screen.EnterRawMode(); err != nil {
		return err
	}
	defer a.screen.ExitRawMode()

	a.render()

	// afterDispatch runs once per key, which is exactly when state may
	// have changed.
	err := a.input.Run(a.reader, func(handled bool) {
		if !a.running {
			return
		}
		a.render()
	})

	// Normal termination via Stop() surfaces as a reader error.
	if !a.running {
		return nil
	}
	return err
}
