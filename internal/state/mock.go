// internal/state/mock.go
package state

import (
	"maps"
	"slices"
)

// Mock is a test double for Manager. Saves are applied immediately.
type Mock struct {
	values  map[string]float64
	focused string
	saves   int
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string]float64)}
}

func (m *Mock) SaveValue(name string, value float64) {
	m.values[name] = value
	m.saves++
}

func (m *Mock) GetValues() (map[string]float64, error) {
	return maps.Clone(m.values), nil
}

func (m *Mock) DeleteValues(keep []string) error {
	maps.DeleteFunc(m.values, func(name string, _ float64) bool {
		return !slices.Contains(keep, name)
	})
	return nil
}

func (m *Mock) SaveFocus(name string) error {
	m.focused = name
	return nil
}

func (m *Mock) GetFocus() (string, error) {
	return m.focused, nil
}

func (m *Mock) Flush() error { return nil }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetValue(name string, value float64) { m.values[name] = value }

func (m *Mock) Value(name string) (float64, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
