package databaseprovider

import (
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"inventory/providers"
)

type PostgresProvider struct {
	db *sqlx.DB
}

// NewDBProvider connects and brings the schema up to the latest migration
// found at migrationsPath.
func NewDBProvider(connectionStr, migrationsPath string, logger providers.ZapLoggerProvider) (*PostgresProvider, error) {
	db, err := sqlx.Connect("postgres", connectionStr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	logger.GetLogger().Info("connected to postgres")

	version, err := migrateUp(db, migrationsPath)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migration failed")
	}
	logger.GetLogger().Info("schema migrated", zap.String("source", migrationsPath), zap.Uint("version", version))
	return &PostgresProvider{db: db}, nil
}

func (p *PostgresProvider) DB() *sqlx.DB {
	return p.db
}

func (p *PostgresProvider) Close() error {
	return p.db.Close()
}

func migrateUp(db *sqlx.DB, migrationsPath string) (uint, error) {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return 0, err
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return 0, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if dirty {
		return version, errors.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}
