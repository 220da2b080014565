// Package migrations embeds the catalog schema and the reference data that
// integration tests load into a fresh database.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var files embed.FS

// goose keeps its base FS and dialect in package state.
var mu sync.Mutex //nolint: gochecknoglobals

// Up creates the catalog tables and loads the reference data.
func Up(db *sql.DB) error {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(files)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("could not apply catalog migrations: %w", err)
	}

	return nil
}
