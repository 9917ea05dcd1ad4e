package migrations

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const createCourseUnitsSQL = `
CREATE TABLE IF NOT EXISTS course_units (
    id   INTEGER PRIMARY KEY,
    data JSONB NOT NULL
);`

var Migrations = migrate.NewMigrations()

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(createCourseUnitsSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(`DROP TABLE IF EXISTS course_units`)
			return err
		},
	)
}
