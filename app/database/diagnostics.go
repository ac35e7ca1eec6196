package database

import (
	"context"
	"time"
)

// Collaborator states reported by the diagnostics endpoint.
const (
	StateNotConfigured = "not_configured"
	StateUnreachable   = "unreachable"
	StateConnected     = "connected"
)

const (
	maxReportedTables = 10
	pingTimeout       = 5 * time.Second
)

// Report is the diagnostics payload: collaborator status plus environment
// presence. It carries status strings, never errors.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
	Error            string   `json:"error,omitempty"`
}

// Diagnostics probes the optional persistence collaborator. The database
// handle may be nil when no database is configured.
type Diagnostics struct {
	db           *DB
	databaseURL  string
	databaseName string
}

func NewDiagnostics(db *DB, databaseURL, databaseName string) *Diagnostics {
	return &Diagnostics{
		db:           db,
		databaseURL:  databaseURL,
		databaseName: databaseName,
	}
}

// Run probes the collaborator and builds the status report. Every failure is
// downgraded to a status string; Run never returns an error.
func (d *Diagnostics) Run(ctx context.Context) Report {
	report := Report{
		Backend:          "running",
		Database:         StateNotConfigured,
		DatabaseURL:      presence(d.databaseURL),
		DatabaseName:     presence(d.databaseName),
		ConnectionStatus: "not_connected",
		Tables:           []string{},
	}

	if d.db == nil {
		return report
	}

	probeCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := d.db.PingContext(probeCtx); err != nil {
		report.Database = StateUnreachable
		report.Error = truncateError(err)
		return report
	}

	report.Database = StateConnected
	report.ConnectionStatus = "connected"

	tables, err := d.listTables(probeCtx)
	if err != nil {
		report.Error = truncateError(err)
		return report
	}
	report.Tables = tables

	return report
}

// listTables returns up to maxReportedTables table names, enough to show the
// collaborator holds real data without dumping its whole schema.
func (d *Diagnostics) listTables(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name LIMIT ?", maxReportedTables)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]string, 0, maxReportedTables)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

func presence(value string) string {
	if value == "" {
		return "not set"
	}
	return "set"
}

// truncateError keeps failure detail short enough for a status payload.
func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > 50 {
		return msg[:50]
	}
	return msg
}
