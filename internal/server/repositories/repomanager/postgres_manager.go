// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and schema bootstrap (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tallerkeeper/internal/dbx"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/equipment"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Equipment returns an equipment.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Equipment(db dbx.DBTX) equipment.Repository {
	return equipment.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema files.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
