package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/slider/internal/db"
)

// GetFocus returns the name of the slider focused when the mixer last quit,
// or an empty string.
func (m *Manager) GetFocus() (string, error) {
	var focused sql.NullString
	err := m.db.QueryRow(`SELECT focused FROM mixer_state WHERE id = 1`).Scan(&focused)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return dbutil.NullStringValue(focused), nil
}

// SaveFocus records the focused slider.
func (m *Manager) SaveFocus(name string) error {
	_, err := m.db.Exec(`
		INSERT INTO mixer_state (id, focused) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET focused = excluded.focused
	`, dbutil.NullString(name))
	return err
}
