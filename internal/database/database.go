// Package database manages the connection to the ION database.
package database

import (
	"fmt"

	_ "github.com/denisenkom/go-mssqldb"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Session owns one database connection for the duration of a run. Callers
// must Close it on every exit path.
type Session struct {
	DB *sqlx.DB
}

// Open connects with the given driver and DSN and verifies the connection.
func Open(driver, dsn string) (*Session, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: connect (%s): %w", driver, err)
	}
	return &Session{DB: db}, nil
}

// Close releases the session.
func (s *Session) Close() error {
	return s.DB.Close()
}

// Rebind adapts ?-style placeholders to the connected driver's style.
func (s *Session) Rebind(query string) string {
	return s.DB.Rebind(query)
}
