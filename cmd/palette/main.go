// Command palette demos the fuzzy filter list: type to filter, j/k to
// move within matches, enter to pin the selection into the status
// label, q via ctrl-c (plain q edits the query).
package main

import (
	"fmt"
	"os"

	"github.com/kungfusheep/riffkey"
	"golang.org/x/term"

	"mesh"
)

var commands = []string{
	"open file",
	"save file",
	"save all",
	"close buffer",
	"split horizontal",
	"split vertical",
	"find in files",
	"go to definition",
	"rename symbol",
	"toggle comment",
	"format buffer",
	"quit",
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "palette: stdout is not a terminal")
		os.Exit(1)
	}

	list := mesh.NewFilterList(commands, 30, 10)
	status := mesh.NewLabel("", mesh.NewStyle().Bold())

	grid := mesh.NewGrid(list, 0, 0, status, 0, 12)
	if err := grid.ConnectUpDown(grid.TopLeft(), grid.BottomRight()); err != nil {
		fmt.Fprintln(os.Stderr, "palette:", err)
		os.Exit(1)
	}

	app := mesh.NewApp(grid, 40, 14, ' ')
	app.Handle("<C-c>", func(riffkey.Match) { app.Stop() })
	app.Handle("<BS>", func(riffkey.Match) { app.Send('\b') })
	app.Handle("<Space>", func(riffkey.Match) { app.Send(' ') })
	app.Handle("<Enter>", func(riffkey.Match) {
		if sel, ok := list.Selected(); ok {
			status.SetText("> " + sel)
		}
	})

	// Route the printable keys riffkey doesn't already own into the
	// query. The direction keys stay bound to focus movement.
	for c := 'a'; c <= 'z'; c++ {
		key := c
		switch key {
		case mesh.KeyUp, mesh.KeyDown, mesh.KeyLeft, mesh.KeyRight:
			continue
		}
		app.Handle(string(key), func(riffkey.Match) { app.Send(key) })
	}

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "palette:", err)
		os.Exit(1)
	}
}
