//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import "testing"

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 3},
		{"slider context", "slider", 6},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)
			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d",
					tt.context, len(result), tt.expectMinLength)
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding %q has context %q", b.Action, b.Context)
				}
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for _, b := range All {
		if b.Action == "" {
			t.Errorf("binding %v has no action", b.Keys)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
	}
}

func TestSliderAndGlobalKeysDoNotOverlap(t *testing.T) {
	global := GlobalResolver()
	for _, b := range ByContext("slider") {
		for _, key := range b.Keys {
			if a := global.Resolve(key); a != "" {
				t.Errorf("key %q bound to both %q and %q", key, b.Action, a)
			}
		}
	}
}

func TestGlobalResolver(t *testing.T) {
	r := GlobalResolver()

	tests := map[string]Action{
		"q":         ActionQuit,
		"ctrl+c":    ActionQuit,
		"tab":       ActionFocusNext,
		"shift+tab": ActionFocusPrev,
		"?":         ActionHelp,
		"=":         ActionEnterValue,
		"left":      "",
	}
	for key, want := range tests {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}
