package mesh

import "testing"

func TestUpdater(t *testing.T) {
	t.Run("FirstFrameDraws", func(t *testing.T) {
		p := &probe{}
		u := NewUpdater[Element](p)
		c := NewCanvas(3, 3, ' ')

		u.Draw(c, 0, 0, false)
		if p.draws != 1 {
			t.Errorf("expected initial draw, got %d", p.draws)
		}
	})

	t.Run("DrawSkippedAfterAdvance", func(t *testing.T) {
		p := &probe{}
		u := NewUpdater[Element](p)
		c := NewCanvas(3, 3, ' ')

		u.Advance()
		u.Draw(c, 0, 0, false)
		if p.draws != 0 {
			t.Errorf("expected draw suppressed after advance, got %d", p.draws)
		}
	})

	t.Run("NonPassResponseReactivates", func(t *testing.T) {
		p := &probe{respondFn: func(rune) Response { return Handled() }}
		u := NewUpdater[Element](p)
		c := NewCanvas(3, 3, ' ')

		u.Advance()
		u.Respond('x')
		u.Draw(c, 0, 0, false)
		if p.draws != 1 {
			t.Errorf("expected draw after handled response, got %d", p.draws)
		}
	})

	t.Run("PassResponseDoesNot", func(t *testing.T) {
		p := &probe{}
		u := NewUpdater[Element](p)
		c := NewCanvas(3, 3, ' ')

		u.Advance()
		if resp := u.Respond('?'); resp.Verdict != VerdictPass {
			t.Fatalf("expected pass, got %v", resp.Verdict)
		}
		u.Draw(c, 0, 0, false)
		if p.draws != 0 {
			t.Errorf("pass-through re-armed the dirty bit")
		}
	})

	t.Run("EntryHooksSetBit", func(t *testing.T) {
		for _, tt := range []struct {
			name string
			call func(u *Updater[Element])
		}{
			{"EnterTop", func(u *Updater[Element]) { u.EnterTop() }},
			{"EnterBottom", func(u *Updater[Element]) { u.EnterBottom() }},
			{"EnterLeft", func(u *Updater[Element]) { u.EnterLeft() }},
			{"EnterRight", func(u *Updater[Element]) { u.EnterRight() }},
		} {
			t.Run(tt.name, func(t *testing.T) {
				p := &probe{}
				u := NewUpdater[Element](p)
				u.Advance()
				tt.call(u)
				if !u.Updated() {
					t.Error("entry hook did not set the dirty bit")
				}
				if p.lastEntered() == "" {
					t.Error("entry hook was not forwarded")
				}
			})
		}
	})

	t.Run("AlertSetsBitAndForwards", func(t *testing.T) {
		p := &probe{alertFn: func() []Handle { return []Handle{3} }}
		u := NewUpdater[Element](p)
		u.Advance()

		got := u.Alert()
		if !u.Updated() {
			t.Error("alert did not set the dirty bit")
		}
		if p.alerted != 1 {
			t.Error("alert was not forwarded")
		}
		if len(got) != 1 || got[0] != 3 {
			t.Errorf("cascade handles not returned: %v", got)
		}
	})

	t.Run("InnerAccess", func(t *testing.T) {
		scroller := NewTextScroller("a\nb\nc", 1, 2)
		u := NewUpdater(scroller)
		if u.Inner() != scroller {
			t.Error("Inner did not return the wrapped widget")
		}
	})
}
