package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtsidehq/courtside/pkg/console/mouse"
)

// Overlay is any surface that blocks background interaction while open.
type Overlay interface {
	ID() string
	Kind() Kind
	IsOpen() bool
	Open()
	Close()
	HandleKey(tea.KeyMsg) (string, tea.Cmd)
	HandleMouse(mouse.Action) (string, tea.Cmd)
	Render(screenW, screenH int, mh *mouse.Handler) string
	Position() (x, y int)
}

// Manager owns the stack and the ordered list of open overlays for one
// console session. It routes input to the top surface while any surface is
// open and composites the open surfaces over the background.
//
// The manager holds back-references only: an overlay's lifecycle belongs to
// whoever created it, and closed overlays are pruned lazily.
type Manager struct {
	stack *Stack
	pre   *Preloader

	overlays []Overlay // open order; last is top, preloader always above
	blocked  bool
}

// NewManager creates a manager with a fresh stack and preloader.
func NewManager() *Manager {
	g := &Manager{}
	g.stack = NewStack()
	g.stack.SetBlockHook(func(active bool) { g.blocked = active })
	g.pre = NewPreloader(g.stack)
	return g
}

// Stack returns the shared stack, for constructing surfaces directly.
func (g *Manager) Stack() *Stack { return g.stack }

// Preloader returns the session's single preloader instance.
func (g *Manager) Preloader() *Preloader { return g.pre }

// Active reports whether any surface is blocking the background.
func (g *Manager) Active() bool { return g.blocked }

// Show opens an overlay and places it on top.
func (g *Manager) Show(o Overlay) {
	o.Open()
	g.overlays = append(g.overlays, o)
}

// ShowError constructs, opens, and returns an error modal. The returned
// instance supports later SetMessage calls.
func (g *Manager) ShowError(message, title string) *ErrorModal {
	e := NewErrorModal(g.stack, message, ErrorOptions{Title: title})
	g.Show(e)
	return e
}

// ShowConfirm constructs, opens, and returns a confirm/cancel dialogue.
func (g *Manager) ShowConfirm(message string, onConfirm func(), opts ConfirmOptions) *Dialogue {
	d := NewDialogue(g.stack, message, onConfirm, opts)
	g.Show(d)
	return d
}

// ShowForm constructs, opens, and returns a form modal.
func (g *Manager) ShowForm(fields []Field, onSubmit func(Values), opts FormOptions) *Form {
	f := NewForm(g.stack, fields, onSubmit, opts)
	g.Show(f)
	return f
}

// Top returns the surface that should receive input: the preloader when
// visible, else the topmost open modal, else nil.
func (g *Manager) Top() Overlay {
	if g.pre.IsOpen() {
		return g.pre
	}
	g.prune()
	if len(g.overlays) == 0 {
		return nil
	}
	return g.overlays[len(g.overlays)-1]
}

// prune drops overlays that have closed since the last pass.
func (g *Manager) prune() {
	kept := g.overlays[:0]
	for _, o := range g.overlays {
		if o.IsOpen() {
			kept = append(kept, o)
		}
	}
	g.overlays = kept
}

// HandleKey routes a key press to the top surface. With nothing open it
// reports unhandled so the background keymap applies; in particular escape
// with no overlay open has no effect here.
func (g *Manager) HandleKey(msg tea.KeyMsg) (action string, cmd tea.Cmd, handled bool) {
	top := g.Top()
	if top == nil {
		return "", nil, false
	}
	action, cmd = top.HandleKey(msg)
	return action, cmd, true
}

// HandleMouse routes a mouse action to the top surface. While any surface is
// open the event is consumed here regardless of position: outside clicks and
// background scrolling neither dismiss the surface nor reach the background.
func (g *Manager) HandleMouse(act mouse.Action) (action string, cmd tea.Cmd, handled bool) {
	top := g.Top()
	if top == nil {
		return "", nil, false
	}
	action, cmd = top.HandleMouse(act)
	return action, cmd, true
}

// Update advances animation state (the preloader spinner).
func (g *Manager) Update(msg tea.Msg) tea.Cmd {
	return g.pre.Update(msg)
}

// Compose renders the open surfaces over the background, bottom-most first,
// with the preloader above everything. Hit regions are registered in the
// same order so the top surface wins mouse hits.
func (g *Manager) Compose(background string, screenW, screenH int, mh *mouse.Handler) string {
	g.prune()
	out := background
	for _, o := range g.overlays {
		box := o.Render(screenW, screenH, mh)
		x, y := o.Position()
		out = Composite(out, box, x, y, screenW, screenH)
	}
	if g.pre.IsOpen() {
		box := g.pre.Render(screenW, screenH, mh)
		x, y := g.pre.Position()
		out = Composite(out, box, x, y, screenW, screenH)
	}
	return out
}
