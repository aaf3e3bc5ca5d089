// Package services contains server-side business logic. This file implements
// EquipmentService, the CRUD surface over equipment records.
package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tallerkeeper/internal/dbx"
	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/models"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/repomanager"
)

// EquipmentService runs each operation on its own pooled connection.
type EquipmentService struct {
	pool        *dbx.Pool
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewEquipmentService(pool *dbx.Pool, m repomanager.RepositoryManager, logger logging.Logger) *EquipmentService {
	return &EquipmentService{
		pool:        pool,
		repomanager: m,
		logger:      logger.With("module", "equipment_service"),
	}
}

func (s *EquipmentService) List(ctx context.Context) ([]*models.Equipment, error) {
	var list []*models.Equipment
	err := s.pool.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		list, err = s.repomanager.Equipment(conn).List(ctx)
		return err
	})
	return list, err
}

// Get returns common.ErrorNotFound when no row has the given id.
func (s *EquipmentService) Get(ctx context.Context, id int64) (*models.Equipment, error) {
	var e *models.Equipment
	err := s.pool.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		e, err = s.repomanager.Equipment(conn).GetByID(ctx, id)
		return err
	})
	return e, err
}

// Create stores e; the identifier is always assigned by the store.
func (s *EquipmentService) Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error) {
	e.ID = 0
	var created *models.Equipment
	err := s.pool.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		created, err = s.repomanager.Equipment(conn).Create(ctx, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "equipment created", "id", created.ID)
	return created, nil
}

// Update replaces every descriptive field of row e.ID. Updating an id that
// does not exist succeeds without touching anything.
func (s *EquipmentService) Update(ctx context.Context, e *models.Equipment) (*models.Equipment, error) {
	var affected int64
	err := s.pool.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		affected, err = s.repomanager.Equipment(conn).Update(ctx, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		s.logger.Warn(ctx, "update matched no equipment", "id", e.ID)
	}
	return e, nil
}

// Delete removes row id, even if it does not exist, and restarts the id
// sequence at 1 once the table is empty. The table lock keeps inserts out
// between the count and the reset.
func (s *EquipmentService) Delete(ctx context.Context, id int64) error {
	return s.pool.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return dbx.WithTx(ctx, conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := s.repomanager.Equipment(tx)

			if err := repo.LockForReset(ctx); err != nil {
				return err
			}

			deleted, err := repo.Delete(ctx, id)
			if err != nil {
				return err
			}

			remaining, err := repo.Count(ctx)
			if err != nil {
				return err
			}

			if remaining == 0 {
				if err := repo.ResetIdentity(ctx); err != nil {
					return err
				}
				s.logger.Info(ctx, "equipment table empty, id sequence reset")
			}

			s.logger.Info(ctx, "equipment deleted", "id", id, "rows", deleted)
			return nil
		})
	})
}
