// Package overlay provides the console's modal and preloader surfaces and the
// shared stack that coordinates background input blocking across them.
//
// Every blocking surface (modal variants, preloader) enters the stack when it
// opens and exits exactly once when it closes, no matter which path closed it:
// an explicit button, the escape key, or a programmatic call. The stack is a
// counter rather than a boolean so that nested surfaces (a preloader shown
// while a dialogue is open) only unblock the background when the last one
// closes.
//
// # Quick Start
//
//	mgr := overlay.NewManager()
//
//	mgr.ShowConfirm("Delete this tournament?", onDelete, overlay.ConfirmOptions{
//	    Title:       "Confirm Delete",
//	    ConfirmText: " Delete ",
//	    Dangerous:   true,
//	})
//
//	// In Update():
//	action, cmd, handled := mgr.HandleKey(keyMsg)
//
//	// In View():
//	out := mgr.Compose(background, screenW, screenH, mouseHandler)
//
// # Surfaces
//
//   - Dialogue - confirm/cancel prompt, optional danger styling
//   - Form - ordered field list with required/select validation
//   - ErrorModal - message plus a single acknowledge button
//   - Preloader - spinner shown around in-flight requests, not user-dismissable
//
// Modal content is built from structured sections (Text, Spacer, Buttons,
// fields); caller-supplied strings are always rendered as text, never
// re-parsed as markup.
package overlay
