package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slider/internal/config"
	"github.com/llehouerou/slider/internal/state"
	"github.com/llehouerou/slider/internal/ui/testutil"
)

func (mx *mixer) typeValue(text string) {
	mx.h.SendKey("=")
	for range len(mx.m.Entry.Value()) {
		mx.h.SendKey("backspace")
	}
	for _, r := range text {
		mx.h.SendKey(string(r))
	}
}

func TestEntry_SetsValue(t *testing.T) {
	st := state.NewMock()
	mx := newMixer(t, st, testConfig())

	mx.h.SendKey("=")
	require.True(t, mx.m.Entry.Active())
	assert.Equal(t, "50", mx.m.Entry.Value())
	assert.Contains(t, testutil.StripANSI(mx.m.View()), "> 50")

	mx.typeValue("80")
	mx.h.SendKey("enter")

	assert.False(t, mx.m.Entry.Active())
	assert.InDelta(t, 80.0, mx.m.Sliders[0].Value(), 1e-9)
	v, _ := st.Value("master")
	assert.InDelta(t, 80.0, v, 1e-9)
}

func TestEntry_ValueIsNormalized(t *testing.T) {
	mx := newMixer(t, state.NewMock(), testConfig())

	mx.typeValue("250")
	mx.h.SendKey("enter")
	assert.InDelta(t, 100.0, mx.m.Sliders[0].Value(), 1e-9)

	mx.typeValue("12.6")
	mx.h.SendKey("enter")
	assert.InDelta(t, 13.0, mx.m.Sliders[0].Value(), 1e-9)

	mx.typeValue("NaN")
	mx.h.SendKey("enter")
	assert.InDelta(t, 13.0, mx.m.Sliders[0].Value(), 1e-9)
	assert.Empty(t, mx.m.ErrorMsg)
}

func TestEntry_DecimalTieRoundsUp(t *testing.T) {
	cfg := testConfig()
	cfg.Sliders[0] = config.SliderConfig{
		Name: "balance", Label: "Balance",
		Min: ptr(-1), Max: ptr(1), Step: ptr(0.1), Value: ptr(0),
	}
	st := state.NewMock()
	mx := newMixer(t, st, cfg)

	mx.typeValue("0.35")
	mx.h.SendKey("enter")

	assert.Equal(t, 0.4, mx.m.Sliders[0].Value())
	v, _ := st.Value("balance")
	assert.Equal(t, 0.4, v, "persisted without float noise")
}

func TestEntry_InvalidNumber(t *testing.T) {
	mx := newMixer(t, state.NewMock(), testConfig())

	mx.typeValue("loud")
	mx.h.SendKey("enter")

	assert.InDelta(t, 50.0, mx.m.Sliders[0].Value(), 1e-9)
	assert.Contains(t, mx.m.ErrorMsg, "Failed to parse value 'loud'")

	mx.h.SendKey("right")
	assert.Empty(t, mx.m.ErrorMsg, "a successful change clears the error")
}

func TestEntry_Escape(t *testing.T) {
	mx := newMixer(t, state.NewMock(), testConfig())

	mx.typeValue("10")
	mx.h.SendKey("esc")

	assert.False(t, mx.m.Entry.Active())
	assert.InDelta(t, 50.0, mx.m.Sliders[0].Value(), 1e-9)
}

func TestEntry_CapturesKeys(t *testing.T) {
	mx := newMixer(t, state.NewMock(), testConfig())

	mx.h.SendKey("=")
	mx.h.SendKey("q")
	mx.h.SendKey("right")

	assert.False(t, mx.m.Quitting)
	assert.InDelta(t, 50.0, mx.m.Sliders[0].Value(), 1e-9)
	assert.Equal(t, "50q", mx.m.Entry.Value())
}

func TestEntry_DisabledSlider(t *testing.T) {
	mx := newMixer(t, state.NewMock(), testConfig())

	mx.h.SendKey("shift+tab")
	mx.h.SendKey("=")

	assert.False(t, mx.m.Entry.Active())
}
