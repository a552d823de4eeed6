// Command scroller shows two dirty-tracked text scrollers side by side.
// h/l move focus between them, j/k scroll within the focused one, q
// quits.
package main

import (
	"fmt"
	"os"

	"github.com/kungfusheep/riffkey"
	"golang.org/x/term"

	"mesh"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "scroller: stdout is not a terminal")
		os.Exit(1)
	}

	left := mesh.NewUpdater(mesh.NewTextScroller("a\nbb\nc\ndd\ng\nh\ni", 3, 5))
	right := mesh.NewUpdater(mesh.NewTextScroller("abcdefg\nhijk\nlmnop\nqrstuv\nwxyz", 8, 3))

	grid := mesh.NewGrid(left, 0, 0, right, 11, 1)
	if err := grid.ConnectLeftRight(grid.TopLeft(), grid.BottomRight()); err != nil {
		fmt.Fprintln(os.Stderr, "scroller:", err)
		os.Exit(1)
	}

	app := mesh.NewApp(grid, 20, 20, ' ')
	app.Handle("q", func(riffkey.Match) { app.Stop() })
	app.Handle("<C-c>", func(riffkey.Match) { app.Stop() })

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "scroller:", err)
		os.Exit(1)
	}
}
