// Package flow models the user-facing interaction state machines (the
// confirmation gate, the edit form, and the transient success notice)
// independently of any rendering layer.
package flow

import "context"

// Kind selects the presentation of a confirmation prompt. It never changes
// behavior.
type Kind string

const (
	KindDanger  Kind = "danger"
	KindWarning Kind = "warning"
)

// Action is the operation a confirmation gates.
type Action func(ctx context.Context) error

// Prompt is what a renderer needs to show an open confirmation.
type Prompt struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Gate is a two-state confirmation: closed, or open with a prompt and a
// bound action. At most one confirmation is open at a time; requesting a new
// one while another is open replaces it.
type Gate struct {
	open      bool
	prompt    Prompt
	onConfirm Action
}

// Request opens the gate, replacing any pending confirmation.
func (g *Gate) Request(kind Kind, title, message string, onConfirm Action) {
	g.open = true
	g.prompt = Prompt{Kind: kind, Title: title, Message: message}
	g.onConfirm = onConfirm
}

// Confirm invokes the bound action exactly once and closes the gate. It is a
// no-op when nothing is pending.
func (g *Gate) Confirm(ctx context.Context) error {
	if !g.open {
		return nil
	}
	action := g.onConfirm
	g.close()
	if action == nil {
		return nil
	}
	return action(ctx)
}

// Cancel closes the gate without invoking the bound action.
func (g *Gate) Cancel() {
	g.close()
}

// IsOpen reports whether a confirmation is pending.
func (g *Gate) IsOpen() bool {
	return g.open
}

// Pending returns the open prompt, if any.
func (g *Gate) Pending() (Prompt, bool) {
	return g.prompt, g.open
}

func (g *Gate) close() {
	g.open = false
	g.prompt = Prompt{}
	g.onConfirm = nil
}
