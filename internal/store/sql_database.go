package store

import (
	"database/sql"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. SQLite connections leave it nil; only the PostgreSQL connection
// installs a classifier.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            string
}

func (db *DB) Migrate() error {
	if db.dialect == dialectPostgres {
		return migrations.MigratePostgres(db.DB)
	}
	return migrations.Migrate(db.DB)
}
