// Package equipment stores equipment records in the equipos table.
package equipment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tallerkeeper/internal/common"
	"github.com/dmitrijs2005/tallerkeeper/internal/dbx"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every row in store order; no ORDER BY is applied.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Equipment, error) {
	query :=
		`SELECT id, nombre_dueno, apellido_dueno, modelo, fecha_ingreso, telefono, fallo
		 FROM equipos
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Equipment, 0)
	for rows.Next() {
		e := &models.Equipment{}
		if err := scanEquipment(rows, e); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Equipment, error) {
	query :=
		`SELECT id, nombre_dueno, apellido_dueno, modelo, fecha_ingreso, telefono, fallo
		 FROM equipos
		 WHERE id = $1
		 `

	e := &models.Equipment{}
	err := scanEquipment(r.db.QueryRowContext(ctx, query, id), e)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

// Create inserts e and fills in the identifier assigned by the store.
func (r *PostgresRepository) Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error) {
	query :=
		`INSERT INTO equipos (nombre_dueno, apellido_dueno, modelo, fecha_ingreso, telefono, fallo)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		e.NombreDueno, e.ApellidoDueno, e.Modelo, e.FechaIngreso, e.Telefono, e.Fallo).Scan(&e.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return e, nil
}

// Update replaces all descriptive fields of row e.ID and reports how many
// rows were touched. Zero is not an error.
func (r *PostgresRepository) Update(ctx context.Context, e *models.Equipment) (int64, error) {
	query :=
		`UPDATE equipos
		 SET nombre_dueno = $1, apellido_dueno = $2, modelo = $3, fecha_ingreso = $4, telefono = $5, fallo = $6
		 WHERE id = $7
		 `

	res, err := r.db.ExecContext(ctx, query,
		e.NombreDueno, e.ApellidoDueno, e.Modelo, e.FechaIngreso, e.Telefono, e.Fallo, e.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return rowsAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM equipos WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return rowsAffected(res)
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM equipos`

	var n int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}

// LockForReset blocks concurrent inserts until the surrounding transaction
// ends. Must run inside a transaction.
func (r *PostgresRepository) LockForReset(ctx context.Context) error {
	query := `LOCK TABLE equipos IN SHARE ROW EXCLUSIVE MODE`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ResetIdentity makes the next assigned id 1.
func (r *PostgresRepository) ResetIdentity(ctx context.Context) error {
	query := `SELECT setval(pg_get_serial_sequence('equipos', 'id'), 1, false)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner, e *models.Equipment) error {
	return row.Scan(&e.ID, &e.NombreDueno, &e.ApellidoDueno, &e.Modelo, &e.FechaIngreso, &e.Telefono, &e.Fallo)
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
