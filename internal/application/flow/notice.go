package flow

import "time"

// DefaultNoticeTTL matches how long the success modal stays on screen.
const DefaultNoticeTTL = 1200 * time.Millisecond

// Notice is a transient success message that dismisses itself after its TTL.
// The clock is passed in by the caller so expiry is testable.
type Notice struct {
	message string
	shownAt time.Time
	ttl     time.Duration
}

// NewNotice creates a notice holder with the given TTL; a non-positive TTL
// falls back to the default.
func NewNotice(ttl time.Duration) *Notice {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notice{ttl: ttl}
}

// Show replaces the current message and restarts the dismiss timer.
func (n *Notice) Show(message string, now time.Time) {
	n.message = message
	n.shownAt = now
}

// Current returns the message if it is still visible at the given instant.
func (n *Notice) Current(now time.Time) (string, bool) {
	if n.message == "" || now.Sub(n.shownAt) >= n.ttl {
		return "", false
	}
	return n.message, true
}

// Dismiss clears the message before its TTL elapses.
func (n *Notice) Dismiss() {
	n.message = ""
}
