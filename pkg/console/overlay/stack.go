package overlay

// Stack counts the currently-open blocking surfaces. The background is
// blocked exactly while the count is above zero.
//
// A counter, not a boolean: when a preloader is shown while a modal is also
// open, closing only one of them must not unblock the background.
type Stack struct {
	open    int
	onBlock func(active bool)
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// SetBlockHook registers a hook invoked when the stack transitions between
// inactive and active. Used by the console shell to toggle background input
// routing.
func (s *Stack) SetBlockHook(fn func(active bool)) {
	s.onBlock = fn
}

// Enter records a surface opening. On the 0->1 transition the block hook
// fires with active=true.
func (s *Stack) Enter() {
	s.open++
	if s.open == 1 && s.onBlock != nil {
		s.onBlock(true)
	}
}

// Exit records a surface closing, floored at zero. Extra exits are absorbed
// so a double-close bug cannot corrupt the shared state. On the 1->0
// transition the block hook fires with active=false.
func (s *Stack) Exit() {
	if s.open == 0 {
		return
	}
	s.open--
	if s.open == 0 && s.onBlock != nil {
		s.onBlock(false)
	}
}

// Active reports whether any blocking surface is open.
func (s *Stack) Active() bool {
	return s.open > 0
}

// Depth returns the number of currently-open surfaces.
func (s *Stack) Depth() int {
	return s.open
}
