package render

// SelectionState is the reader's annotation interaction state. At most one of
// the create popover and the note tooltip is visible at a time.
type SelectionState int

const (
	// StateIdle: nothing pending, no overlay shown.
	StateIdle SelectionState = iota
	// StateSelecting: a non-empty selection exists and the create popover is
	// anchored next to it.
	StateSelecting
	// StateAffordance: the pointer rests on an existing highlight marker and
	// the small open-note indicator is shown.
	StateAffordance
	// StateTooltip: the note tooltip for a highlight marker is open.
	StateTooltip
)

// Anchor is a viewport-coordinate position for overlays, derived by the host
// from the selection or marker bounding rectangle.
type Anchor struct {
	X float64
	Y float64
}

// SelectionController decides which overlay the reader UI shows. It is driven
// through explicit events so any toolkit's selection and pointer APIs can feed
// it, and it holds no DOM references. The persist callback writes the pending
// selection to the highlight store; the controller only reports success after
// the write succeeded, so the UI never claims a highlight that was not stored.
type SelectionController struct {
	state   SelectionState
	pending string
	anchor  Anchor
	hovered string
	active  string
	persist func(text string) error
}

// NewSelectionController returns a controller in the idle state. persist must
// not be nil.
func NewSelectionController(persist func(text string) error) *SelectionController {
	return &SelectionController{persist: persist}
}

// State returns the current interaction state.
func (c *SelectionController) State() SelectionState {
	return c.state
}

// Select reports a finished text selection. A non-empty selection opens the
// create popover; an empty one dismisses any pending state. Selecting replaces
// a previous pending selection and closes an open tooltip.
func (c *SelectionController) Select(text string, at Anchor) {
	if text == "" {
		c.Dismiss()
		return
	}
	c.state = StateSelecting
	c.pending = text
	c.anchor = at
	c.hovered = ""
	c.active = ""
}

// Confirm persists the pending selection. On success the selection is cleared
// and the controller returns to idle; on failure the pending selection stays
// intact so the user can retry.
func (c *SelectionController) Confirm() error {
	if c.state != StateSelecting {
		return nil
	}
	if err := c.persist(c.pending); err != nil {
		return err
	}
	c.state = StateIdle
	c.pending = ""
	return nil
}

// Dismiss discards any pending selection or open overlay.
func (c *SelectionController) Dismiss() {
	c.state = StateIdle
	c.pending = ""
	c.hovered = ""
	c.active = ""
}

// HoverMarker reports the pointer entering an existing highlight marker. The
// affordance never appears while the create popover or a tooltip is open.
func (c *SelectionController) HoverMarker(highlightID string, at Anchor) {
	if c.state != StateIdle && c.state != StateAffordance {
		return
	}
	c.state = StateAffordance
	c.hovered = highlightID
	c.anchor = at
}

// LeaveMarker reports the pointer leaving a marker, hiding the affordance.
func (c *SelectionController) LeaveMarker() {
	if c.state != StateAffordance {
		return
	}
	c.state = StateIdle
	c.hovered = ""
}

// ActivateMarker opens the tooltip for the hovered marker.
func (c *SelectionController) ActivateMarker() {
	if c.state != StateAffordance {
		return
	}
	c.state = StateTooltip
	c.active = c.hovered
	c.hovered = ""
}

// ClickOutside closes whatever is open.
func (c *SelectionController) ClickOutside() {
	c.Dismiss()
}

// Popover returns the create-popover contents when it is visible.
func (c *SelectionController) Popover() (text string, at Anchor, visible bool) {
	if c.state != StateSelecting {
		return "", Anchor{}, false
	}
	return c.pending, c.anchor, true
}

// Affordance returns the hovered marker id when the indicator is visible.
func (c *SelectionController) Affordance() (highlightID string, at Anchor, visible bool) {
	if c.state != StateAffordance {
		return "", Anchor{}, false
	}
	return c.hovered, c.anchor, true
}

// Tooltip returns the open tooltip's highlight id when it is visible.
func (c *SelectionController) Tooltip() (highlightID string, at Anchor, visible bool) {
	if c.state != StateTooltip {
		return "", Anchor{}, false
	}
	return c.active, c.anchor, true
}
