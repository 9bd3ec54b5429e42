package nav

import "go.uber.org/zap"

// Viewport is the environment the tracker observes and drives.
type Viewport interface {
	// ScrollY returns the current vertical scroll offset.
	ScrollY() float64
	// OffsetTop returns the document offset of the section with the given id,
	// or false when no such section is mounted.
	OffsetTop(id string) (float64, bool)
	// ScrollIntoView smooth-scrolls the section to the top of the viewport.
	ScrollIntoView(id string) bool
}

// Tracker keeps the active section in sync with the scroll position.
// A Tracker is driven from a single event loop and is not safe for concurrent use.
type Tracker struct {
	sections         []Section
	viewport         Viewport
	activationOffset float64
	logger           *zap.Logger

	activeID string
	menuOpen bool

	lastY    float64
	measured bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithActivationOffset overrides DefaultActivationOffset.
func WithActivationOffset(px float64) Option {
	return func(t *Tracker) { t.activationOffset = px }
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTracker returns a tracker with the first section active and the menu closed.
func NewTracker(sections []Section, viewport Viewport, opts ...Option) *Tracker {
	t := &Tracker{
		sections:         append([]Section(nil), sections...),
		viewport:         viewport,
		activationOffset: DefaultActivationOffset,
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.sections) > 0 {
		t.activeID = t.sections[0].ID
	}
	return t
}

// OnScroll recomputes the active section. Section offsets are only read when
// the scroll position has moved since the previous call, so repeated events
// at one position cost a single ScrollY read.
func (t *Tracker) OnScroll() string {
	if len(t.sections) == 0 || t.viewport == nil {
		return t.activeID
	}
	y := t.viewport.ScrollY()
	if t.measured && y == t.lastY {
		return t.activeID
	}
	t.lastY, t.measured = y, true

	offsets := make([]Offset, 0, len(t.sections))
	for _, s := range t.sections {
		if top, ok := t.viewport.OffsetTop(s.ID); ok {
			offsets = append(offsets, Offset{ID: s.ID, Top: top})
		}
	}
	next := ActiveID(t.sections, offsets, y, t.activationOffset)
	if next != t.activeID {
		t.logger.Debug("active section changed",
			zap.String("from", t.activeID),
			zap.String("to", next),
			zap.Float64("scroll_y", y))
		t.activeID = next
	}
	return t.activeID
}

// NavigateTo scrolls the section into view and closes the menu. Unknown or
// unmounted ids are ignored apart from closing the menu.
func (t *Tracker) NavigateTo(id string) {
	t.menuOpen = false
	if !Contains(t.sections, id) || t.viewport == nil {
		return
	}
	if !t.viewport.ScrollIntoView(id) {
		t.logger.Debug("navigation target not mounted", zap.String("section", id))
	}
}

// ToggleMenu flips the mobile menu.
func (t *Tracker) ToggleMenu() {
	t.menuOpen = !t.menuOpen
}

// ActiveID returns the currently active section id.
func (t *Tracker) ActiveID() string {
	return t.activeID
}

// MenuOpen reports whether the mobile menu is visible.
func (t *Tracker) MenuOpen() bool {
	return t.menuOpen
}

// Sections returns a copy of the tracked sections in document order.
func (t *Tracker) Sections() []Section {
	return append([]Section(nil), t.sections...)
}

// Items renders the menu for the tracker's current state.
func (t *Tracker) Items() []Item {
	return Items(t.sections, t.activeID)
}
