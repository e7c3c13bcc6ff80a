package repository

import (
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies every embedded migration in file name order. Migrations
// are written to be re-runnable.
func Migrate(db *sql.DB, logger *slog.Logger) error {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := migrationsFS.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := db.Exec(string(content)); err != nil {
			logger.Error("Migration failed", "file", file, "error", err)
			return err
		}
		logger.Info("Migration applied", "file", file)
	}
	return nil
}
