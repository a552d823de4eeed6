package mesh

import "testing"

func TestLabel(t *testing.T) {
	t.Run("Draw", func(t *testing.T) {
		c := NewCanvas(10, 1, ' ')
		NewLabel("hi", NewStyle().Bold()).Draw(c, 0, 0, false)

		cell, _ := c.Get(0, 0)
		if cell.Rune != 'h' || !cell.On().Has(AttrBold) {
			t.Errorf("unexpected first cell %+v", cell)
		}
		if cell.On().Has(AttrInverse) {
			t.Error("unselected label drew inverse")
		}
	})

	t.Run("SelectedAddsInverse", func(t *testing.T) {
		c := NewCanvas(10, 1, ' ')
		NewLabel("hi", NewStyle()).Draw(c, 0, 0, true)

		cell, _ := c.Get(0, 0)
		if !cell.On().Has(AttrInverse) {
			t.Error("selected label did not draw inverse")
		}
	})
}

func TestTextScroller(t *testing.T) {
	const text = "one\ntwo\nthree\nfour\nfive"

	t.Run("ScrollWithinContent", func(t *testing.T) {
		s := NewTextScroller(text, 5, 3)

		if resp := s.Respond(KeyDown); resp.Verdict != VerdictHandled {
			t.Fatalf("expected handled, got %v", resp.Verdict)
		}
		if s.Window() != 1 {
			t.Errorf("window = %d, want 1", s.Window())
		}
		if resp := s.Respond(KeyUp); resp.Verdict != VerdictHandled {
			t.Fatalf("expected handled, got %v", resp.Verdict)
		}
		if s.Window() != 0 {
			t.Errorf("window = %d, want 0", s.Window())
		}
	})

	t.Run("EdgesBecomeMoves", func(t *testing.T) {
		s := NewTextScroller(text, 5, 3)

		if resp := s.Respond(KeyUp); resp.Verdict != VerdictMoveUp {
			t.Errorf("expected move up at top, got %v", resp.Verdict)
		}
		s.Respond(KeyDown)
		s.Respond(KeyDown)
		// Last line now visible; further scrolling turns into a move.
		if resp := s.Respond(KeyDown); resp.Verdict != VerdictMoveDown {
			t.Errorf("expected move down at bottom, got %v", resp.Verdict)
		}
	})

	t.Run("HorizontalAlwaysMoves", func(t *testing.T) {
		s := NewTextScroller(text, 5, 3)
		if resp := s.Respond(KeyLeft); resp.Verdict != VerdictMoveLeft {
			t.Errorf("expected move left, got %v", resp.Verdict)
		}
		if resp := s.Respond(KeyRight); resp.Verdict != VerdictMoveRight {
			t.Errorf("expected move right, got %v", resp.Verdict)
		}
	})

	t.Run("OtherInputPasses", func(t *testing.T) {
		s := NewTextScroller(text, 5, 3)
		if resp := s.Respond('x'); resp.Verdict != VerdictPass {
			t.Errorf("expected pass, got %v", resp.Verdict)
		}
	})

	t.Run("DrawWindow", func(t *testing.T) {
		s := NewTextScroller(text, 5, 3)
		s.Respond(KeyDown)

		c := NewCanvas(10, 5, ' ')
		s.Draw(c, 0, 0, false)

		cell, _ := c.Get(0, 0)
		if cell.Rune != 't' { // "two"
			t.Errorf("expected scrolled first row, got %q", cell.Rune)
		}
	})

	t.Run("DrawPadsStaleRows", func(t *testing.T) {
		s := NewTextScroller(text, 5, 2)
		c := NewCanvas(10, 5, ' ')

		s.Draw(c, 0, 0, false) // "one", "two"
		s.Respond(KeyDown)
		s.Draw(c, 0, 0, false) // "two", "three"

		// Row 0 previously held "one"; the shorter "two" must pad over
		// the leftover 'e' inside the widget's width.
		cell, _ := c.Get(3, 0)
		if cell.Rune != ' ' {
			t.Errorf("stale rune %q not padded over", cell.Rune)
		}
	})

	t.Run("ShortContentDrawsAll", func(t *testing.T) {
		s := NewTextScroller("a\nb", 3, 5)
		c := NewCanvas(5, 5, ' ')
		s.Draw(c, 0, 0, false)

		first, _ := c.Get(0, 0)
		second, _ := c.Get(0, 1)
		if first.Rune != 'a' || second.Rune != 'b' {
			t.Errorf("short content misdrawn: %q %q", first.Rune, second.Rune)
		}
	})
}
