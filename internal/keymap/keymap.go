package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "slider"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionFocusNext, []string{"tab"}, "Next slider", "global"},
	{ActionFocusPrev, []string{"shift+tab"}, "Previous slider", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionEnterValue, []string{"="}, "Type a value", "global"},

	// Slider
	{ActionDecrease, []string{"left", "h", "down", "j"}, "Decrease by one step", "slider"},
	{ActionIncrease, []string{"right", "l", "up", "k"}, "Increase by one step", "slider"},
	{ActionPageDecrease, []string{"pgdown"}, "Decrease by ten steps", "slider"},
	{ActionPageIncrease, []string{"pgup"}, "Increase by ten steps", "slider"},
	{ActionJumpMin, []string{"home"}, "Jump to minimum", "slider"},
	{ActionJumpMax, []string{"end"}, "Jump to maximum", "slider"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// SliderResolver returns a resolver for the slider keyboard bindings.
func SliderResolver() *Resolver {
	return NewResolver(ByContext("slider"))
}

// GlobalResolver returns a resolver for application-wide bindings.
func GlobalResolver() *Resolver {
	return NewResolver(ByContext("global"))
}
