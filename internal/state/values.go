package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/slider/internal/db"
)

// GetValues returns every saved slider value by name.
func (m *Manager) GetValues() (map[string]float64, error) {
	return getValues(m.db)
}

func getValues(db *sql.DB) (map[string]float64, error) {
	rows, err := db.Query(`SELECT name, value FROM slider_values`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]float64)
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		values[name] = value
	}
	return values, rows.Err()
}

func saveValues(db *sql.DB, values map[string]float64, now time.Time) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO slider_values (name, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for name, value := range values {
			if _, err := stmt.Exec(name, value, now.Unix()); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteValues forgets saved values whose slider is no longer configured.
func (m *Manager) DeleteValues(keep []string) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if len(keep) == 0 {
			_, err := tx.Exec(`DELETE FROM slider_values`)
			return err
		}
		if _, err := tx.Exec(`CREATE TEMP TABLE IF NOT EXISTS keep_names (name TEXT PRIMARY KEY)`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM keep_names`); err != nil {
			return err
		}
		for _, name := range keep {
			if _, err := tx.Exec(`INSERT OR IGNORE INTO keep_names (name) VALUES (?)`, name); err != nil {
				return err
			}
		}
		_, err := tx.Exec(`DELETE FROM slider_values WHERE name NOT IN (SELECT name FROM keep_names)`)
		return err
	})
}
