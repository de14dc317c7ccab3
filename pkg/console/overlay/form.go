package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/courtsidehq/courtside/pkg/console/mouse"
)

// FormOptions configures a form modal.
type FormOptions struct {
	ID       string
	Title    string
	Width    int
	Initial  Values // pre-populated field values (edit mode)
	EditMode bool   // changes the primary button label only
	OnCancel func()
}

// Form is a modal variant that renders an ordered field list and validates
// it before delivering the collected values to the submit callback.
type Form struct {
	*Modal

	fields   []*fieldSection
	fieldErr map[string]string
	onSubmit func(Values)
	editMode bool
}

// NewForm builds a form modal from field descriptors. Initial values
// pre-populate matching fields; EditMode only changes the primary button
// label ("Update" instead of "Create"), never validation or submission.
func NewForm(stack *Stack, fields []Field, onSubmit func(Values), opts FormOptions) *Form {
	title := opts.Title
	if title == "" {
		title = "Form"
	}
	width := opts.Width
	if width == 0 {
		width = 56
	}

	f := &Form{
		fieldErr: make(map[string]string),
		onSubmit: onSubmit,
		editMode: opts.EditMode,
	}

	modalOpts := []Option{
		WithWidth(width),
		WithPrimaryAction(ActionSubmit),
	}
	if opts.ID != "" {
		modalOpts = append(modalOpts, WithID(opts.ID))
	}
	if opts.OnCancel != nil {
		modalOpts = append(modalOpts, WithOnCancel(opts.OnCancel))
	}
	f.Modal = New(stack, title, modalOpts...)

	for _, fd := range fields {
		initial := ""
		if opts.Initial != nil {
			initial = opts.Initial[fd.Name]
		}
		fs := newFieldSection(fd, initial, f.fieldErr)
		f.fields = append(f.fields, fs)
		f.AddSection(fs)
		f.AddSection(Spacer())
	}

	primaryLabel := " Create "
	if opts.EditMode {
		primaryLabel = " Update "
	}
	f.AddSection(Buttons(
		Btn(primaryLabel, ActionSubmit, BtnPrimary()),
		Btn(" Cancel ", ActionCancel),
	))

	// Focus the first field immediately so the keystroke right after opening
	// lands in it rather than waiting for a render pass.
	if len(fields) > 0 {
		f.SetFocus(fieldFocusID(fields[0].Name))
	}

	return f
}

// Submit validates every field and, on success, delivers the collected
// name-to-value mapping to the submit callback and closes the form. On
// failure the form stays open with inline messages on the offending fields
// and the callback is not invoked.
func (f *Form) Submit() bool {
	if !f.Validate() {
		return false
	}

	values := f.CurrentValues()
	if f.onSubmit != nil {
		f.onSubmit(values)
	}
	f.Confirm(values)
	f.Close()
	return true
}

// Validate checks required fields and select choices, replacing the inline
// error set. Returns true when the form is submittable.
func (f *Form) Validate() bool {
	for k := range f.fieldErr {
		delete(f.fieldErr, k)
	}

	ok := true
	for _, fs := range f.fields {
		val := fs.Value()

		if fs.field.Required && val == "" {
			f.fieldErr[fs.field.Name] = "This field is required"
			ok = false
			continue
		}

		if fs.field.Kind == FieldSelect && val != "" && !hasOption(fs.field.Options, val) {
			f.fieldErr[fs.field.Name] = "Choose one of the listed options"
			ok = false
		}
	}
	return ok
}

// CurrentValues collects the current raw text of every field. Values are not
// coerced; numeric or date interpretation is up to the caller.
func (f *Form) CurrentValues() Values {
	values := make(Values, len(f.fields))
	for _, fs := range f.fields {
		values[fs.field.Name] = fs.Value()
	}
	return values
}

// FieldError returns the inline validation message for a field, if any.
func (f *Form) FieldError(name string) string {
	return f.fieldErr[name]
}

// EditMode reports whether the form was built in edit mode.
func (f *Form) EditMode() bool { return f.editMode }

// HandleKey routes keys through the base modal and applies form semantics to
// the surfaced action.
func (f *Form) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	action, cmd := f.Modal.HandleKey(msg)
	return f.apply(action), cmd
}

// HandleMouse routes mouse actions through the base modal and applies form
// semantics to the surfaced action.
func (f *Form) HandleMouse(act mouse.Action) (string, tea.Cmd) {
	action, cmd := f.Modal.HandleMouse(act)
	return f.apply(action), cmd
}

func (f *Form) apply(action string) string {
	switch action {
	case ActionSubmit:
		if !f.Submit() {
			// Stay open; the inline messages carry the failure.
			return ""
		}
	case ActionCancel:
		f.Close()
	}
	return action
}

func hasOption(opts []SelectOption, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
