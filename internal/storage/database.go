package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hazri/internal/week"
)

type Database struct {
	db *sql.DB
}

func New(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	database := &Database{db: db}
	if err := database.createTables(); err != nil {
		return nil, err
	}

	return database, nil
}

func (d *Database) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS day_records (
			week_start TEXT NOT NULL,
			day_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			date_label TEXT NOT NULL,
			is_today INTEGER NOT NULL DEFAULT 0,
			punch_in TEXT NOT NULL DEFAULT '',
			punch_out TEXT NOT NULL DEFAULT '',
			gross_hours REAL NOT NULL DEFAULT 0,
			leave_type TEXT NOT NULL DEFAULT 'none',
			status TEXT NOT NULL DEFAULT 'future',
			PRIMARY KEY (week_start, day_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_day_records_week ON day_records(week_start)`,
	}

	for _, query := range queries {
		if _, err := d.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

// SaveWeek replaces the stored week with the given records in one
// transaction. Callers always persist a whole derived week at once; partial
// in-place updates would let two gross-hour derivations interleave.
func (d *Database) SaveWeek(weekStart time.Time, days []week.DayRecord) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	key := weekStart.Format("2006-01-02")
	if _, err := tx.Exec(`DELETE FROM day_records WHERE week_start = ?`, key); err != nil {
		return fmt.Errorf("failed to clear week: %w", err)
	}

	for i, day := range days {
		_, err := tx.Exec(
			`INSERT INTO day_records
			 (week_start, day_id, position, date_label, is_today, punch_in, punch_out, gross_hours, leave_type, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			key, day.ID, i, day.DateLabel, day.IsToday,
			day.PunchIn, day.PunchOut, day.GrossHours, string(day.LeaveType), string(day.Status),
		)
		if err != nil {
			return fmt.Errorf("failed to save day %s: %w", day.ID, err)
		}
	}

	return tx.Commit()
}

// LoadWeek returns the stored week in display order, or nil when nothing has
// been saved for that week yet.
func (d *Database) LoadWeek(weekStart time.Time) ([]week.DayRecord, error) {
	rows, err := d.db.Query(
		`SELECT day_id, date_label, is_today, punch_in, punch_out, gross_hours, leave_type, status
		 FROM day_records WHERE week_start = ?
		 ORDER BY position ASC`,
		weekStart.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []week.DayRecord
	for rows.Next() {
		var day week.DayRecord
		var leave, status string

		if err := rows.Scan(&day.ID, &day.DateLabel, &day.IsToday,
			&day.PunchIn, &day.PunchOut, &day.GrossHours, &leave, &status); err != nil {
			return nil, err
		}
		day.LeaveType = week.LeaveType(leave)
		day.Status = week.DayStatus(status)

		days = append(days, day)
	}

	return days, rows.Err()
}

func (d *Database) DeleteWeek(weekStart time.Time) error {
	_, err := d.db.Exec(`DELETE FROM day_records WHERE week_start = ?`,
		weekStart.Format("2006-01-02"))
	return err
}
