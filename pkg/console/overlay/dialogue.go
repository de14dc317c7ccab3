package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtsidehq/courtside/pkg/console/mouse"
)

// ConfirmOptions configures a Dialogue.
type ConfirmOptions struct {
	ID          string
	Title       string
	ConfirmText string
	CancelText  string
	Dangerous   bool // styling only; confirm behaves identically
	OnCancel    func()
}

// Dialogue is a confirm/cancel modal. Activating the confirm button invokes
// the confirm callback without closing; the cancel button and escape close
// the dialogue through the usual cancel path.
type Dialogue struct {
	*Modal
}

// NewDialogue builds a confirm/cancel dialogue around a message.
func NewDialogue(stack *Stack, message string, onConfirm func(), opts ConfirmOptions) *Dialogue {
	title := opts.Title
	if title == "" {
		title = "Confirm"
	}
	confirmText := opts.ConfirmText
	if confirmText == "" {
		confirmText = " Confirm "
	}
	cancelText := opts.CancelText
	if cancelText == "" {
		cancelText = " Cancel "
	}

	modalOpts := []Option{
		WithPrimaryAction(ActionConfirm),
		WithOnConfirm(func(Values) {
			if onConfirm != nil {
				onConfirm()
			}
		}),
	}
	if opts.ID != "" {
		modalOpts = append(modalOpts, WithID(opts.ID))
	}
	if opts.OnCancel != nil {
		modalOpts = append(modalOpts, WithOnCancel(opts.OnCancel))
	}
	if opts.Dangerous {
		modalOpts = append(modalOpts, WithVariant(VariantDanger))
	}

	d := &Dialogue{Modal: New(stack, title, modalOpts...)}

	confirmBtn := Btn(confirmText, ActionConfirm, BtnPrimary())
	if opts.Dangerous {
		confirmBtn = Btn(confirmText, ActionConfirm, BtnDanger())
	}

	d.AddSection(Text(message)).
		AddSection(Spacer()).
		AddSection(Buttons(confirmBtn, Btn(cancelText, ActionCancel)))

	return d
}

// HandleKey routes keys through the base modal and applies dialogue
// semantics to the surfaced action.
func (d *Dialogue) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	action, cmd := d.Modal.HandleKey(msg)
	return d.apply(action), cmd
}

// HandleMouse routes mouse actions through the base modal.
func (d *Dialogue) HandleMouse(act mouse.Action) (string, tea.Cmd) {
	action, cmd := d.Modal.HandleMouse(act)
	return d.apply(action), cmd
}

func (d *Dialogue) apply(action string) string {
	switch action {
	case ActionConfirm:
		// Confirm does not close: a caller may keep the dialogue up while
		// the confirmed work is in flight, then close it explicitly.
		d.Confirm(nil)
	case ActionCancel:
		d.Close()
	}
	return action
}
