package database

import (
	"database/sql"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

func MigrateDatabase(databaseUrl string, migrations fs.FS, dir, driverName, dialect string) error {
	db, err := sql.Open(driverName, databaseUrl)
	if err != nil {
		return errors.Wrap(err, "failed to open database for migrations")
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "failed to set migrations dialect")
	}

	if err := goose.Up(db, dir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
