// Package migrations applies the embedded goose SQL migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	"offerengine/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

const dir = "sql"

// Supported commands.
const (
	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
)

// Files exposes the embedded migration files.
func Files() fs.FS {
	return embedded
}

// Run executes a goose command against db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, table, command string) error {
	if db == nil {
		return errors.New("db is required")
	}

	goose.SetBaseFS(embedded)
	if table != "" {
		goose.SetTableName(table)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, dir)
	case CommandDown:
		err = goose.DownContext(ctx, db, dir)
	case CommandStatus:
		err = goose.StatusContext(ctx, db, dir)
	default:
		return errors.Errorf("unknown migration command: %s", command)
	}

	return errors.Wrapf(err, "goose %s", command)
}
