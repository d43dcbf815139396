package main

import (
	"database/sql"
	"fmt"
)

// initDB opens the corpus database with the driver chosen at build time and
// checks that it can be reached, since sql.Open connects lazily.
func initDB(dataSource string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriver, dataSource)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to %s: %w", dataSource, err)
	}
	return db, nil
}
