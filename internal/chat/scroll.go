package chat

import "math"

// bottomThreshold is how close (in px) to the bottom edge still counts as
// pinned. Matches the chat view's proximity check.
const bottomThreshold = 10

// ScrollTracker tracks whether the user has scrolled away from the bottom
// of the chat view. While pinned, new assistant content auto-scrolls the
// view; once the user scrolls up, it stays put until they come back.
type ScrollTracker struct {
	userScrolled bool
}

func NewScrollTracker() *ScrollTracker {
	return &ScrollTracker{}
}

// Observe records a scroll position report from the view.
func (t *ScrollTracker) Observe(scrollTop, scrollHeight, clientHeight float64) {
	atBottom := math.Abs(scrollHeight-clientHeight-scrollTop) < bottomThreshold
	t.userScrolled = !atBottom
}

// ShouldAutoScroll reports whether the view should follow new content.
func (t *ScrollTracker) ShouldAutoScroll() bool {
	return !t.userScrolled
}

// Pin re-pins the view to the bottom, as when the user sends a message or
// taps the scroll-to-bottom control.
func (t *ScrollTracker) Pin() {
	t.userScrolled = false
}
