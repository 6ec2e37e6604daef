// internal/state/interface.go
package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveValue(name string, value float64)
	GetValues() (map[string]float64, error)
	DeleteValues(keep []string) error
	SaveFocus(name string) error
	GetFocus() (string, error)
	Flush() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
