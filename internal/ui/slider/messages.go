package slider

// Source identifies slider actions in action.Msg.
const Source = "slider"

// Changed is emitted after a user interaction wrote a new value.
type Changed struct {
	Name  string
	Value float64
}

// ActionType implements action.Action.
func (Changed) ActionType() string { return "changed" }

// Focused is emitted when a pointer press moved focus to the slider.
type Focused struct {
	Name string
}

// ActionType implements action.Action.
func (Focused) ActionType() string { return "focused" }

// TouchPhase is the stage of a touch contact.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// TouchMsg is a touch event translated to cell coordinates by the host.
// Terminals do not report touch, so hosts embedding the slider in a
// touch-capable frontend deliver these instead of tea.MouseMsg.
type TouchMsg struct {
	Phase TouchPhase
	X     int
	Y     int
}
