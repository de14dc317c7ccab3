package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtsidehq/courtside/pkg/console/mouse"
)

// ActionAck is the acknowledge button of an ErrorModal.
const ActionAck = "ack"

// ErrorModal shows a caller-supplied message with a single acknowledge
// button. The message is displayed verbatim as text; server-supplied strings
// are never interpreted as markup. The message can be replaced in place with
// SetMessage without re-entering the stack.
type ErrorModal struct {
	*Modal
	message *textSection
}

// ErrorOptions configures an ErrorModal.
type ErrorOptions struct {
	ID       string
	Title    string
	OnCancel func()
}

// NewErrorModal builds an error modal around a message.
func NewErrorModal(stack *Stack, message string, opts ErrorOptions) *ErrorModal {
	title := opts.Title
	if title == "" {
		title = "Error"
	}

	modalOpts := []Option{
		WithVariant(VariantError),
		WithPrimaryAction(ActionAck),
	}
	if opts.ID != "" {
		modalOpts = append(modalOpts, WithID(opts.ID))
	}
	if opts.OnCancel != nil {
		modalOpts = append(modalOpts, WithOnCancel(opts.OnCancel))
	}

	e := &ErrorModal{
		Modal:   New(stack, title, modalOpts...),
		message: &textSection{text: message, style: Body},
	}

	e.AddSection(e.message).
		AddSection(Spacer()).
		AddSection(Buttons(Btn(" OK ", ActionAck, BtnPrimary())))

	return e
}

// SetMessage replaces the displayed message without recreating the modal or
// touching the stack.
func (e *ErrorModal) SetMessage(message string) {
	e.message.text = message
}

// Message returns the currently displayed message.
func (e *ErrorModal) Message() string {
	return e.message.text
}

// HandleKey routes keys through the base modal; acknowledging closes.
func (e *ErrorModal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	action, cmd := e.Modal.HandleKey(msg)
	return e.apply(action), cmd
}

// HandleMouse routes mouse actions through the base modal.
func (e *ErrorModal) HandleMouse(act mouse.Action) (string, tea.Cmd) {
	action, cmd := e.Modal.HandleMouse(act)
	return e.apply(action), cmd
}

func (e *ErrorModal) apply(action string) string {
	switch action {
	case ActionAck, ActionCancel:
		e.Close()
	}
	return action
}
