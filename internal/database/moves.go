package database

import (
	"time"
)

// MoveRecord is one moved (or, in a dry run, would-be moved) file.
type MoveRecord struct {
	ID         int64
	Folder     string
	FileName   string
	Year       string
	Pattern    string
	SourcePath string
	TargetPath string
	DryRun     bool
	MovedAt    time.Time
}

// YearCount is the number of real moves into one year folder.
type YearCount struct {
	Year  string
	Count int
}

func (l *LedgerDB) RecordMove(rec MoveRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rec.MovedAt.IsZero() {
		rec.MovedAt = time.Now()
	}

	_, err := l.db.Exec(`
		INSERT INTO moves (folder, file_name, year, pattern, source_path, target_path, dry_run, moved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Folder, rec.FileName, rec.Year, rec.Pattern, rec.SourcePath, rec.TargetPath, rec.DryRun, rec.MovedAt.UTC())
	return err
}

// YearCounts returns real (non dry-run) moves grouped by year, oldest year first.
func (l *LedgerDB) YearCounts() ([]YearCount, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rows, err := l.db.Query(`
		SELECT year, COUNT(*)
		FROM moves
		WHERE dry_run = 0
		GROUP BY year
		ORDER BY year
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []YearCount
	for rows.Next() {
		var c YearCount
		if err := rows.Scan(&c.Year, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// RecentMoves returns up to limit records, newest first.
func (l *LedgerDB) RecentMoves(limit int) ([]MoveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	rows, err := l.db.Query(`
		SELECT id, folder, file_name, year, pattern, source_path, target_path, dry_run, moved_at
		FROM moves
		ORDER BY moved_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []MoveRecord
	for rows.Next() {
		var r MoveRecord
		if err := rows.Scan(&r.ID, &r.Folder, &r.FileName, &r.Year, &r.Pattern,
			&r.SourcePath, &r.TargetPath, &r.DryRun, &r.MovedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
