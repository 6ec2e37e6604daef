// Package state persists slider values and the focused slider between runs.
package state

import (
	"database/sql"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "slider"
	dbFileName   = "slider.db"
	saveDebounce = time.Second
)

type Manager struct {
	db *sql.DB

	saveMu    sync.Mutex
	saveTimer *time.Timer
	debounce  time.Duration
	pending   map[string]float64
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	return OpenPath(dbPath)
}

// OpenPath opens the database at dsn, ":memory:" included.
func OpenPath(dsn string) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection serializes writers and keeps :memory: databases
	// from splitting across the pool.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, debounce: saveDebounce}, nil
}

// SetSaveDebounce changes the delay between the last SaveValue and the write.
func (m *Manager) SetSaveDebounce(d time.Duration) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if d > 0 {
		m.debounce = d
	}
}

// Close writes pending values and closes the database.
func (m *Manager) Close() error {
	flushErr := m.Flush()
	return errors.Join(flushErr, m.db.Close())
}

// SaveValue records a slider value. Writes are debounced: a drag produces a
// stream of values and only the last one per slider reaches the database.
func (m *Manager) SaveValue(name string, value float64) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.pending == nil {
		m.pending = make(map[string]float64)
	}
	m.pending[name] = value

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		_ = m.Flush()
	})
}

// Flush writes pending values immediately.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	return saveValues(m.db, pending, time.Now())
}

// Pending returns a copy of the values not yet written.
func (m *Manager) Pending() map[string]float64 {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	return maps.Clone(m.pending)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
