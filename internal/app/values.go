// internal/app/values.go
package app

import (
	"github.com/llehouerou/slider/internal/state"
	"github.com/llehouerou/slider/internal/ui/slider"
)

// ValueStore holds the mixer values in memory. Every write is handed to the
// state manager, which debounces it to disk.
type ValueStore struct {
	values map[string]float64
	state  state.Interface
}

// NewValueStore creates a store seeded with initial values.
func NewValueStore(st state.Interface, initial map[string]float64) *ValueStore {
	values := make(map[string]float64, len(initial))
	for name, v := range initial {
		values[name] = v
	}
	return &ValueStore{values: values, state: st}
}

// Get returns the value of a slider.
func (s *ValueStore) Get(name string) float64 {
	return s.values[name]
}

// Set stores and persists the value of a slider.
func (s *ValueStore) Set(name string, v float64) {
	s.values[name] = v
	s.state.SaveValue(name, v)
}

// Binding returns the slider binding for name.
func (s *ValueStore) Binding(name string) slider.Binding {
	return slider.Funcs{
		GetFunc: func() float64 { return s.Get(name) },
		SetFunc: func(v float64) { s.Set(name, v) },
	}
}
