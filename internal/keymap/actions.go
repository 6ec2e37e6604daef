// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionFocusNext  Action = "focus_next"
	ActionFocusPrev  Action = "focus_prev"
	ActionHelp       Action = "help"
	ActionEnterValue Action = "enter_value" // type a value for the focused slider

	// Slider actions
	ActionDecrease     Action = "decrease"
	ActionIncrease     Action = "increase"
	ActionPageDecrease Action = "page_decrease" // pgdown - ten steps down
	ActionPageIncrease Action = "page_increase" // pgup - ten steps up
	ActionJumpMin      Action = "jump_min"
	ActionJumpMax      Action = "jump_max"
)
