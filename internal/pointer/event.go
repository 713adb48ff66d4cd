package pointer

// Kind identifies a pointer event variant.
type Kind string

const (
	// KindMove repositions the cursor to X, Y.
	KindMove Kind = "move"
	// KindClick is a single left click.
	KindClick Kind = "click"
	// KindMouseDown presses and holds the left button.
	KindMouseDown Kind = "mouse_down"
	// KindMouseUp releases the left button.
	KindMouseUp Kind = "mouse_up"
	// KindScroll scrolls content by Delta (positive = up).
	KindScroll Kind = "scroll"
)

// Classifier names attached to events so a feedback surface can render
// distinguishable cues per gesture.
const (
	SourceCursor     = "cursor"
	SourcePinchClick = "pinch-click"
	SourceDragToggle = "drag-toggle"
	SourceScroll     = "scroll"
	SourceHoverClick = "hover-click"
)

// Event is the only artifact crossing the engine's output boundary.
// X and Y are meaningful for KindMove, Delta for KindScroll.
type Event struct {
	Kind   Kind   `json:"kind"`
	HandID string `json:"hand_id"`
	Source string `json:"source"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Delta  int    `json:"delta,omitempty"`
}
