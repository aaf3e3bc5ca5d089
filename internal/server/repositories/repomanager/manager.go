package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tallerkeeper/internal/dbx"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/equipment"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// runs on a pooled connection or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Equipment(db dbx.DBTX) equipment.Repository
}
