package pointer

// DragToggle is the two-state drag classifier: alternate pinch edges toggle
// between Released and Dragging, emitting MouseDown and MouseUp. It is not
// hold-to-drag; the state persists across frames until the next qualifying
// edge or until the hand disappears.
type DragToggle struct {
	dragging bool
}

// NewDragToggle creates a DragToggle in the Released state.
func NewDragToggle() *DragToggle {
	return &DragToggle{}
}

// Toggle consumes one pinch edge and returns the event kind for the
// transition: MouseDown entering Dragging, MouseUp leaving it.
func (d *DragToggle) Toggle() Kind {
	if d.dragging {
		d.dragging = false
		return KindMouseUp
	}
	d.dragging = true
	return KindMouseDown
}

// Dragging reports whether the button is currently held.
func (d *DragToggle) Dragging() bool {
	return d.dragging
}

// ForceRelease resets to Released and reports whether a MouseUp must be
// emitted. Called when the hand disappears or the pipeline tears down, so
// the pointer sink is never left in a stuck pressed state.
func (d *DragToggle) ForceRelease() bool {
	was := d.dragging
	d.dragging = false
	return was
}
