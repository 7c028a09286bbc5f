package storage

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/lib/pq"

	"realestate-stats/utils"
)

// PostgresReader streams every row of a listings table as strings so the
// same loader can group database-held listings.
type PostgresReader struct {
	db      *sql.DB
	rows    *sql.Rows
	columns []string
}

// NewPostgresReader opens a connection (pinging with retry) and starts a
// full scan of table.
func NewPostgresReader(dsn, table string, retry *utils.RetryConfig) (*PostgresReader, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	rows, err := db.Query(selectAllQuery(table))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: select %s: %w", table, err)
	}

	return &PostgresReader{db: db, rows: rows}, nil
}

func selectAllQuery(table string) string {
	return "SELECT * FROM " + pq.QuoteIdentifier(table)
}

func (pr *PostgresReader) ReadHeader() ([]string, error) {
	cols, err := pr.rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("postgres: columns: %w", err)
	}
	pr.columns = cols
	return cols, nil
}

func (pr *PostgresReader) ReadRow() ([]string, error) {
	if !pr.rows.Next() {
		if err := pr.rows.Err(); err != nil {
			return nil, fmt.Errorf("postgres: iterate: %w", err)
		}
		return nil, io.EOF
	}

	raw := make([]sql.NullString, len(pr.columns))
	dest := make([]any, len(raw))
	for i := range raw {
		dest[i] = &raw[i]
	}
	if err := pr.rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("postgres: scan row: %w", err)
	}
	return nullStrings(raw), nil
}

// nullStrings renders NULL columns as empty strings.
func nullStrings(raw []sql.NullString) []string {
	out := make([]string, len(raw))
	for i, v := range raw {
		if v.Valid {
			out[i] = v.String
		}
	}
	return out
}

func (pr *PostgresReader) Close() error {
	if pr.rows != nil {
		_ = pr.rows.Close()
	}
	return pr.db.Close()
}

const pingBaseDelay = 2 * time.Second

// PingRetry is the back-off used while the database is still starting up.
func PingRetry(maxAttempts int, logger *utils.Logger) *utils.RetryConfig {
	return &utils.RetryConfig{MaxAttempts: maxAttempts, BaseDelay: pingBaseDelay, Logger: logger}
}
