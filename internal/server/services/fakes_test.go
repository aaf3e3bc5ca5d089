package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tallerkeeper/internal/common"
	"github.com/dmitrijs2005/tallerkeeper/internal/dbx"
	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/models"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/equipment"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/users"
)

// --- helpers ---

func newMockPool(t *testing.T) (*dbx.Pool, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return dbx.NewPool(db, dbx.PoolOptions{MaxConns: 2}, logging.Nop{}), mock
}

type fakeRepoManager struct {
	users     *fakeUsersRepo
	equipment *fakeEquipmentRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.users }
func (m *fakeRepoManager) Equipment(dbx.DBTX) equipment.Repository     { return m.equipment }

// fakeUsersRepo keeps users in a map keyed by email.
type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	nextID    int64
	getErr    error
	createErr error
	creates   int
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

// fakeEquipmentRepo mimics a table with a serial id.
type fakeEquipmentRepo struct {
	rows   map[int64]*models.Equipment
	order  []int64
	nextID int64

	calls []string

	listErr   error
	createErr error
	updateErr error
	deleteErr error
	countErr  error
	lockErr   error
	resetErr  error
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{rows: map[int64]*models.Equipment{}, nextID: 1}
}

func (f *fakeEquipmentRepo) List(ctx context.Context) ([]*models.Equipment, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*models.Equipment, 0, len(f.order))
	for _, id := range f.order {
		if e, ok := f.rows[id]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeEquipmentRepo) GetByID(ctx context.Context, id int64) (*models.Equipment, error) {
	f.calls = append(f.calls, "get")
	e, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEquipmentRepo) Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.rows[e.ID] = &cp
	f.order = append(f.order, e.ID)
	return e, nil
}

func (f *fakeEquipmentRepo) Update(ctx context.Context, e *models.Equipment) (int64, error) {
	f.calls = append(f.calls, "update")
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	if _, ok := f.rows[e.ID]; !ok {
		return 0, nil
	}
	cp := *e
	f.rows[e.ID] = &cp
	return 1, nil
}

func (f *fakeEquipmentRepo) Delete(ctx context.Context, id int64) (int64, error) {
	f.calls = append(f.calls, "delete")
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeEquipmentRepo) Count(ctx context.Context) (int64, error) {
	f.calls = append(f.calls, "count")
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.rows)), nil
}

func (f *fakeEquipmentRepo) LockForReset(ctx context.Context) error {
	f.calls = append(f.calls, "lock")
	return f.lockErr
}

func (f *fakeEquipmentRepo) ResetIdentity(ctx context.Context) error {
	f.calls = append(f.calls, "reset")
	if f.resetErr != nil {
		return f.resetErr
	}
	f.nextID = 1
	return nil
}
