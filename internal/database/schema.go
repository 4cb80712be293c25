package database

import "database/sql"

type migration struct {
	version int
	up      []string
}

var migrations = []migration{
	{
		version: 1,
		up: []string{
			`CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE moves (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				folder TEXT NOT NULL,
				file_name TEXT NOT NULL,
				year TEXT NOT NULL,
				pattern TEXT NOT NULL,
				source_path TEXT NOT NULL,
				target_path TEXT NOT NULL,
				dry_run INTEGER NOT NULL DEFAULT 0,
				moved_at DATETIME NOT NULL
			)`,
			`CREATE INDEX idx_moves_year ON moves(year)`,
			`CREATE INDEX idx_moves_folder ON moves(folder)`,
			`INSERT INTO schema_version (version) VALUES (1)`,
		},
	},
}

func currentVersion(db *sql.DB) int {
	var v int
	if err := db.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&v); err != nil {
		// fresh database, no schema_version yet
		return 0
	}
	return v
}

func applyMigrations(db *sql.DB) error {
	current := currentVersion(db)

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		for _, stmt := range m.up {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}
