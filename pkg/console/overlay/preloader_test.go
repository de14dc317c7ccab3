package overlay

import "testing"

func TestPreloaderShowHideIdempotent(t *testing.T) {
	s := NewStack()
	p := NewPreloader(s)

	// Double show increments exactly once.
	p.Show()
	p.Show()
	if s.Depth() != 1 {
		t.Errorf("stack depth after double show = %d, want 1", s.Depth())
	}
	if !p.IsOpen() {
		t.Error("preloader should be visible")
	}

	// Double hide decrements exactly once: a response handler and a
	// load-timeout fallback may both try to hide it.
	p.Hide()
	p.Hide()
	if s.Depth() != 0 {
		t.Errorf("stack depth after double hide = %d, want 0", s.Depth())
	}
	if p.IsOpen() {
		t.Error("preloader should be hidden")
	}
}

func TestPreloaderHideWhileHiddenIsNoop(t *testing.T) {
	s := NewStack()
	p := NewPreloader(s)

	p.Hide()
	if s.Depth() != 0 {
		t.Errorf("stack depth = %d, want 0", s.Depth())
	}

	// A later show/hide pair still balances.
	p.Show()
	p.Hide()
	if s.Depth() != 0 {
		t.Errorf("stack depth = %d after balanced pair, want 0", s.Depth())
	}
}

func TestPreloaderSwallowsInput(t *testing.T) {
	s := NewStack()
	p := NewPreloader(s)
	p.Show()

	if action, _ := p.HandleKey(keyMsg("esc")); action != "" {
		t.Errorf("preloader surfaced action %q for escape", action)
	}
	if !p.IsOpen() {
		t.Error("escape must not hide the preloader")
	}
}

func TestPreloaderOverModalKeepsStackCount(t *testing.T) {
	s := NewStack()
	m := New(s, "Busy")
	m.Open()

	p := NewPreloader(s)
	p.Show()

	if s.Depth() != 2 {
		t.Fatalf("stack depth = %d, want 2", s.Depth())
	}

	// Hiding the preloader keeps the background blocked for the modal.
	p.Hide()
	if !s.Active() {
		t.Error("background should stay blocked while the modal is open")
	}

	m.Close()
	if s.Active() {
		t.Error("background should unblock once everything is closed")
	}
}

func TestPreloaderLabelResetsOnHide(t *testing.T) {
	s := NewStack()
	p := NewPreloader(s)

	p.Show()
	p.SetLabel("Signing in…")
	p.Hide()
	p.Show()

	if p.label != "Loading…" {
		t.Errorf("label = %q after hide/show, want default", p.label)
	}
}
