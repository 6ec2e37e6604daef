package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/slider/internal/state"
)

func TestValueStore(t *testing.T) {
	st := state.NewMock()
	initial := map[string]float64{"master": 40}
	s := NewValueStore(st, initial)

	b := s.Binding("master")
	assert.InDelta(t, 40.0, b.Get(), 1e-9)

	b.Set(60)
	assert.InDelta(t, 60.0, s.Get("master"), 1e-9)
	assert.InDelta(t, 40.0, initial["master"], 1e-9, "initial map is copied")

	v, ok := st.Value("master")
	assert.True(t, ok)
	assert.InDelta(t, 60.0, v, 1e-9)
	assert.Equal(t, 1, st.Saves())
}

func TestValueStore_BindingsAreIndependent(t *testing.T) {
	s := NewValueStore(state.NewMock(), nil)

	s.Binding("bass").Set(3)

	assert.InDelta(t, 3.0, s.Binding("bass").Get(), 1e-9)
	assert.InDelta(t, 0.0, s.Binding("treble").Get(), 1e-9)
}
