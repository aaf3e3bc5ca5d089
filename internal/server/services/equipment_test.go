package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tallerkeeper/internal/common"
	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func payload() *models.Equipment {
	return &models.Equipment{
		NombreDueno:   ptr("Ana"),
		ApellidoDueno: ptr("Ruiz"),
		Modelo:        ptr("X1"),
		FechaIngreso:  models.NewDate(2024, time.January, 1),
		Telefono:      ptr("555"),
		Fallo:         ptr("no enciende"),
	}
}

func newEquipmentService(t *testing.T) (*EquipmentService, *fakeEquipmentRepo) {
	t.Helper()
	pool, _ := newMockPool(t)
	repo := newFakeEquipmentRepo()
	return NewEquipmentService(pool, &fakeRepoManager{equipment: repo}, logging.Nop{}), repo
}

func newEquipmentServiceWithMock(t *testing.T) (*EquipmentService, sqlmock.Sqlmock) {
	t.Helper()
	pool, mock := newMockPool(t)
	repo := newFakeEquipmentRepo()
	return NewEquipmentService(pool, &fakeRepoManager{equipment: repo}, logging.Nop{}), mock
}

func TestEquipment_CreateThenGet(t *testing.T) {
	s, _ := newEquipmentService(t)
	ctx := context.Background()

	in := payload()
	in.ID = 99 // client-supplied ids are ignored

	created, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)

	want := payload()
	want.ID = 1
	assert.Equal(t, want, got)
}

func TestEquipment_UpdateThenGet(t *testing.T) {
	s, _ := newEquipmentService(t)
	ctx := context.Background()

	created, err := s.Create(ctx, payload())
	require.NoError(t, err)

	changed := payload()
	changed.ID = created.ID
	changed.Fallo = ptr("pantalla rota")
	changed.Telefono = nil

	_, err = s.Update(ctx, changed)
	require.NoError(t, err)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, changed, got)
}

func TestEquipment_UpdateMissingIsSilent(t *testing.T) {
	s, repo := newEquipmentService(t)

	e := payload()
	e.ID = 404
	got, err := s.Update(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, int64(404), got.ID)
	assert.Empty(t, repo.rows)
}

func TestEquipment_DeleteThenGetIsNotFound(t *testing.T) {
	s, mock := newEquipmentServiceWithMock(t)
	ctx := context.Background()

	_, err := s.Create(ctx, payload())
	require.NoError(t, err)
	_, err = s.Create(ctx, payload())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, s.Delete(ctx, 1))

	_, err = s.Get(ctx, 1)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipment_DeletingLastRowResetsIdentity(t *testing.T) {
	s, mock := newEquipmentServiceWithMock(t)
	repo := s.repomanager.Equipment(nil).(*fakeEquipmentRepo)
	ctx := context.Background()

	_, err := s.Create(ctx, payload())
	require.NoError(t, err)
	second, err := s.Create(ctx, payload())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, s.Delete(ctx, 1))
	assert.NotContains(t, repo.calls, "reset")

	require.NoError(t, s.Delete(ctx, 2))
	assert.Contains(t, repo.calls, "reset")

	again, err := s.Create(ctx, payload())
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.ID)
}

func TestEquipment_DeleteOrdering(t *testing.T) {
	s, mock := newEquipmentServiceWithMock(t)
	repo := s.repomanager.Equipment(nil).(*fakeEquipmentRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	// deleting a missing id still counts, and resets on an empty table
	require.NoError(t, s.Delete(context.Background(), 5))
	assert.Equal(t, []string{"lock", "delete", "count", "reset"}, repo.calls)
}

func TestEquipment_DeleteRollsBackOnError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *fakeEquipmentRepo)
	}{
		{"lock", func(r *fakeEquipmentRepo) { r.lockErr = errors.New("lock failed") }},
		{"delete", func(r *fakeEquipmentRepo) { r.deleteErr = errors.New("delete failed") }},
		{"count", func(r *fakeEquipmentRepo) { r.countErr = errors.New("count failed") }},
		{"reset", func(r *fakeEquipmentRepo) { r.resetErr = errors.New("reset failed") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newEquipmentServiceWithMock(t)
			tt.mutate(s.repomanager.Equipment(nil).(*fakeEquipmentRepo))

			mock.ExpectBegin()
			mock.ExpectRollback()

			err := s.Delete(context.Background(), 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.name+" failed")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEquipment_DeleteBeginError(t *testing.T) {
	s, mock := newEquipmentServiceWithMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("no tx"))

	err := s.Delete(context.Background(), 1)
	require.EqualError(t, err, "no tx")
}

func TestEquipment_ListPropagatesErrors(t *testing.T) {
	s, repo := newEquipmentService(t)
	repo.listErr = errors.New("db error: boom")

	_, err := s.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, common.KindStore, common.KindOf(err))
}

func TestEquipment_List(t *testing.T) {
	s, _ := newEquipmentService(t)
	ctx := context.Background()

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = s.Create(ctx, payload())
	require.NoError(t, err)

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
}

func TestEquipment_CreateAndUpdateErrors(t *testing.T) {
	s, repo := newEquipmentService(t)
	repo.createErr = errors.New("db error: constraint")
	repo.updateErr = errors.New("db error: constraint")

	_, err := s.Create(context.Background(), payload())
	require.Error(t, err)

	_, err = s.Update(context.Background(), payload())
	require.Error(t, err)
}
