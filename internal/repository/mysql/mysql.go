// Package mysql implements the repositories over a MySQL database.
// The schema is defined in schema.sql at the repository root.
package mysql

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

// New opens a MySQL connection pool for the given DSN.
func New(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
