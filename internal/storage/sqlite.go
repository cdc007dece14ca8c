// Package storage provides persistent storage for conversion runs.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"caai_logbook/internal/aggregate"
	"caai_logbook/internal/pipeline"
	"caai_logbook/internal/report"
)

// Run is a stored conversion run.
type Run struct {
	ID           string                `json:"id"`
	Source       string                `json:"source"`
	Format       string                `json:"format"`
	StartedAt    time.Time             `json:"started_at"`
	RowsRead     int                   `json:"rows_read"`
	RowsAccepted int                   `json:"rows_accepted"`
	RowsRejected int                   `json:"rows_rejected"`
	Report       *report.RunReport     `json:"report,omitempty"`
	Values       *aggregate.FormValues `json:"values,omitempty"`
}

// StoredFlight is one classified flight of a run.
type StoredFlight struct {
	ID           int64     `json:"id"`
	RunID        string    `json:"run_id"`
	Date         time.Time `json:"date"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Registration string    `json:"registration"`
	TypeCode     string    `json:"type_code"`
	Group        string    `json:"group"`
	Role         string    `json:"role"`
	TotalTime    float64   `json:"total_time"`
	PIC          float64   `json:"pic"`
	SIC          float64   `json:"sic"`
	Student      float64   `json:"student"`
	NightHours   float64   `json:"night_hours"`
	Excluded     float64   `json:"excluded,omitempty"`
	DeviceHours  float64   `json:"device_hours,omitempty"`
}

// DB wraps a SQLite database connection for run storage.
type DB struct {
	db *sql.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent access.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database tables and indices.
func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		format TEXT NOT NULL,
		started_at TEXT NOT NULL,
		rows_read INTEGER NOT NULL,
		rows_accepted INTEGER NOT NULL,
		rows_rejected INTEGER NOT NULL,
		report_json TEXT NOT NULL,
		values_json TEXT NOT NULL,
		created_at TEXT DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS flights (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		flight_date TEXT NOT NULL,
		from_airport TEXT,
		to_airport TEXT,
		registration TEXT,
		type_code TEXT,
		grp TEXT,
		role TEXT,
		total_time REAL,
		pic REAL,
		sic REAL,
		student REAL,
		night_hours REAL,
		excluded REAL,
		device_hours REAL
	);

	CREATE INDEX IF NOT EXISTS idx_flights_run ON flights(run_id);
	CREATE INDEX IF NOT EXISTS idx_flights_date ON flights(flight_date);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	_, err := db.Exec(schema)
	return err
}

// SaveRun stores a pipeline result with all its classified flights.
func (d *DB) SaveRun(res *pipeline.Result) error {
	reportJSON, err := json.Marshal(res.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	valuesJSON, err := json.Marshal(res.Values)
	if err != nil {
		return fmt.Errorf("marshal values: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (id, source, format, started_at, rows_read, rows_accepted, rows_rejected, report_json, values_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, res.Report.ID, res.Report.Source, res.Report.Format,
		res.Report.StartedAt.Format(time.RFC3339), res.Report.RowsRead,
		res.Report.RowsAccepted, res.Report.RowsRejected,
		string(reportJSON), string(valuesJSON))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO flights (run_id, flight_date, from_airport, to_airport, registration, type_code, grp, role, total_time, pic, sic, student, night_hours, excluded, device_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare flight insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range res.Flights {
		rec := f.Record
		_, err := stmt.Exec(res.Report.ID, rec.Date.Format("2006-01-02"),
			rec.From, rec.To, rec.Registration, f.TypeCode,
			f.Group.String(), f.Role().String(), rec.TotalTime,
			f.PIC, f.SIC, f.Student, f.NightHours,
			f.SafetyExcluded, f.DeviceHours)
		if err != nil {
			return fmt.Errorf("insert flight: %w", err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run by ID, including its report and form values.
// Returns nil without error when the run does not exist.
func (d *DB) GetRun(id string) (*Run, error) {
	row := d.db.QueryRow(`
		SELECT id, source, format, started_at, rows_read, rows_accepted, rows_rejected, report_json, values_json
		FROM runs WHERE id = ?
	`, id)

	var r Run
	var startedAt, reportJSON, valuesJSON string
	err := row.Scan(&r.ID, &r.Source, &r.Format, &startedAt,
		&r.RowsRead, &r.RowsAccepted, &r.RowsRejected, &reportJSON, &valuesJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}

	r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	if err := json.Unmarshal([]byte(reportJSON), &r.Report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	if err := json.Unmarshal([]byte(valuesJSON), &r.Values); err != nil {
		return nil, fmt.Errorf("unmarshal values: %w", err)
	}
	return &r, nil
}

// ListRuns returns stored runs, newest first. Report and form values are
// omitted; use GetRun for the full record.
func (d *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.db.Query(`
		SELECT id, source, format, started_at, rows_read, rows_accepted, rows_rejected
		FROM runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Source, &r.Format, &startedAt,
			&r.RowsRead, &r.RowsAccepted, &r.RowsRejected); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// FlightsForRun returns the classified flights of a run in date order.
func (d *DB) FlightsForRun(runID string) ([]StoredFlight, error) {
	rows, err := d.db.Query(`
		SELECT id, run_id, flight_date, from_airport, to_airport, registration, type_code, grp, role, total_time, pic, sic, student, night_hours, excluded, device_hours
		FROM flights WHERE run_id = ? ORDER BY flight_date, id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	var flights []StoredFlight
	for rows.Next() {
		var f StoredFlight
		var date string
		if err := rows.Scan(&f.ID, &f.RunID, &date, &f.From, &f.To,
			&f.Registration, &f.TypeCode, &f.Group, &f.Role, &f.TotalTime,
			&f.PIC, &f.SIC, &f.Student, &f.NightHours, &f.Excluded,
			&f.DeviceHours); err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		f.Date, _ = time.Parse("2006-01-02", date)
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// DeleteRun removes a run and its flights.
func (d *DB) DeleteRun(id string) error {
	if _, err := d.db.Exec(`DELETE FROM flights WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("delete flights: %w", err)
	}
	if _, err := d.db.Exec(`DELETE FROM runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}
