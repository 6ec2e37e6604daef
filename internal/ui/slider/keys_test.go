package slider

import (
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/slider/internal/keymap"
	"github.com/llehouerou/slider/internal/ui/testutil"
)

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		key   string
		want  float64
	}{
		{"right clamps to max", 95, "right", 100},
		{"left from off-step value", 95, "left", 90},
		{"l increases", 50, "l", 60},
		{"k increases", 50, "k", 60},
		{"up increases", 50, "up", 60},
		{"h decreases", 50, "h", 40},
		{"j decreases", 50, "j", 40},
		{"down decreases", 50, "down", 40},
		{"pgup moves ten steps", 0, "pgup", 100},
		{"pgdown clamps to min", 50, "pgdown", 0},
		{"home", 70, "home", 0},
		{"end", 30, "end", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.value.Set(tt.start)
			f.m.SetFocused(true)

			r := f.m.HandleKey(testutil.KeyMsg(tt.key))

			assert.True(t, r.Handled)
			assert.Equal(t, tt.want, f.value.Get(), "applied without waiting for the loop")
		})
	}
}

func TestHandleKey_AtBoundStillHandled(t *testing.T) {
	f := newFixture(t)
	f.value.Set(100)
	f.m.SetFocused(true)

	r := f.m.HandleKey(testutil.KeyMsg("right"))

	assert.True(t, r.Handled, "the host must not act on the key")
	assert.Nil(t, r.Cmd)
	assert.Equal(t, 100.0, f.value.Get())
}

func TestHandleKey_Ignored(t *testing.T) {
	t.Run("not focused", func(t *testing.T) {
		f := newFixture(t)
		f.value.Set(50)
		assert.False(t, f.m.HandleKey(testutil.KeyMsg("right")).Handled)
		assert.Equal(t, 50.0, f.value.Get())
	})

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, WithDisabled(true))
		f.value.Set(50)
		f.m.SetFocused(true)
		assert.False(t, f.m.HandleKey(testutil.KeyMsg("right")).Handled)
		assert.Equal(t, 50.0, f.value.Get())
	})

	t.Run("unbound key", func(t *testing.T) {
		f := newFixture(t)
		f.m.SetFocused(true)
		assert.False(t, f.m.HandleKey(testutil.KeyMsg("x")).Handled)
		assert.False(t, f.m.HandleKey(testutil.KeyMsg("tab")).Handled)
	})
}

func TestHandleKey_EmitsChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.m.SetFocused(true)

		f.h.SendKey("right")
		f.h.SendKey("right")

		assert.Equal(t, []Changed{
			{Name: "volume", Value: 10},
			{Name: "volume", Value: 20},
		}, f.changes())
	})
}

func TestHandleKey_PageSteps(t *testing.T) {
	f := newFixture(t, WithPageSteps(2))
	f.m.SetFocused(true)

	f.m.HandleKey(testutil.KeyMsg("pgup"))

	assert.Equal(t, 20.0, f.value.Get())
}

func TestHandleKey_CustomKeys(t *testing.T) {
	r := keymap.NewResolver([]keymap.Binding{
		{Action: keymap.ActionIncrease, Keys: []string{"+"}},
		{Action: keymap.ActionDecrease, Keys: []string{"-"}},
	})
	f := newFixture(t, WithKeys(r))
	f.m.SetFocused(true)

	assert.True(t, f.m.HandleKey(testutil.KeyMsg("+")).Handled)
	assert.Equal(t, 10.0, f.value.Get())
	assert.False(t, f.m.HandleKey(testutil.KeyMsg("right")).Handled)
}

func TestHandleKey_FractionalStepKeepsExactValue(t *testing.T) {
	f := newFixture(t, WithRange(Range{Min: -1, Max: 1, Step: 0.1}))
	f.m.SetFocused(true)

	for range 3 {
		f.m.HandleKey(testutil.KeyMsg("right"))
	}
	assert.Equal(t, 0.3, f.value.Get())

	for range 5 {
		f.m.HandleKey(testutil.KeyMsg("left"))
	}
	assert.Equal(t, -0.2, f.value.Get())
}
