// Package helpbindings exposes the key bindings to bubbles/help.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/slider/internal/keymap"
)

// categoryOrder defines the column order of the full help.
var categoryOrder = []string{
	"slider",
	"global",
}

// shortActions are shown on the one-line help, with a terse description.
var shortActions = []struct {
	action keymap.Action
	desc   string
}{
	{keymap.ActionDecrease, "less"},
	{keymap.ActionIncrease, "more"},
	{keymap.ActionFocusNext, "next"},
	{keymap.ActionHelp, "help"},
	{keymap.ActionQuit, "quit"},
}

// maxHelpKeys bounds how many keys are listed for one binding.
const maxHelpKeys = 2

// KeyMap implements help.KeyMap over keymap.All.
type KeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

// New builds the help key map from the current bindings.
func New() KeyMap {
	var k KeyMap
	for _, ctx := range categoryOrder {
		var column []key.Binding
		for _, b := range keymap.ByContext(ctx) {
			column = append(column, toKey(b, b.Description))
		}
		if len(column) > 0 {
			k.full = append(k.full, column)
		}
	}
	for _, s := range shortActions {
		for _, b := range keymap.All {
			if b.Action == s.action {
				k.short = append(k.short, toKey(b, s.desc))
				break
			}
		}
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.short
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return k.full
}

func toKey(b keymap.Binding, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKeys(b.Keys), desc),
	)
}

func helpKeys(keys []string) string {
	if len(keys) > maxHelpKeys {
		keys = keys[:maxHelpKeys]
	}
	return strings.Join(keys, "/")
}
