package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slider/internal/ui/action"
	"github.com/llehouerou/slider/internal/ui/testutil"
)

const testContext = "test-ctx"

func newTestInput(t *testing.T, title, initialText string) (*Model, *testutil.Harness) {
	t.Helper()
	m := New()
	h := testutil.NewHarness(&m)
	h.Run(m.Start(title, initialText, testContext, 80))
	h.Reset()
	return &m, h
}

func results(h *testutil.Harness) []Result {
	var out []Result
	for _, msg := range testutil.MessagesOf[action.Msg](h) {
		if r, ok := msg.Action.(Result); ok {
			out = append(out, r)
		}
	}
	return out
}

func TestStart(t *testing.T) {
	m, _ := newTestInput(t, "Master", "50")

	assert.True(t, m.Active())
	assert.Equal(t, "50", m.Value())

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "Master")
	assert.Contains(t, view, "> 50")
	assert.Contains(t, view, hint)
}

func TestTypingAndEnter(t *testing.T) {
	m, h := newTestInput(t, "Master", "5")

	h.SendKey("backspace")
	h.SendKey("7")
	h.SendKey(".")
	h.SendKey("5")
	assert.Equal(t, "7.5", m.Value())

	h.SendKey("enter")

	got := results(h)
	require.Len(t, got, 1)
	assert.Equal(t, Result{Text: "7.5", Context: testContext}, got[0])
	assert.Equal(t, Source, testutil.MessagesOf[action.Msg](h)[0].Source)
}

func TestEscape(t *testing.T) {
	_, h := newTestInput(t, "Master", "5")

	h.SendKey("esc")

	got := results(h)
	require.Len(t, got, 1)
	assert.True(t, got[0].Canceled)
	assert.Equal(t, testContext, got[0].Context)
}

func TestCharLimit(t *testing.T) {
	m, h := newTestInput(t, "Master", "")

	for range charLimit + 5 {
		h.SendKey("9")
	}

	assert.Len(t, m.Value(), charLimit)
}

func TestReset(t *testing.T) {
	m, h := newTestInput(t, "Master", "5")

	m.Reset()

	assert.False(t, m.Active())
	assert.Empty(t, m.Value())
	assert.Empty(t, m.View())

	h.SendKey("enter")
	assert.Empty(t, results(h), "closed entry ignores keys")
}
