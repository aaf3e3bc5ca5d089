package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tallerkeeper/internal/common"
	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (*UserService, *fakeUsersRepo) {
	t.Helper()
	pool, _ := newMockPool(t)
	repo := newFakeUsersRepo()
	s, err := NewUserService(pool, &fakeRepoManager{users: repo}, bcrypt.MinCost, logging.Nop{})
	require.NoError(t, err)
	return s, repo
}

func TestNewUserService_LowCostFallsBackToDefault(t *testing.T) {
	pool, _ := newMockPool(t)
	s, err := NewUserService(pool, &fakeRepoManager{users: newFakeUsersRepo()}, 0, logging.Nop{})
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, s.cost)
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	s, repo := newUserService(t)

	u, err := s.Register(context.Background(), ptr("bob"), "b@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	stored := repo.byEmail["b@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw", string(stored.PasswordHash))
	assert.NoError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("pw")))

	cost, err := bcrypt.Cost(stored.PasswordHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, repo := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, ptr("bob"), "b@x.com", "pw")
	require.NoError(t, err)

	_, err = s.Register(ctx, ptr("bobby"), "b@x.com", "other")
	require.ErrorIs(t, err, common.ErrorDuplicateEmail)
	assert.Equal(t, 1, repo.creates, "no second row may be created")
	assert.Equal(t, "bob", *repo.byEmail["b@x.com"].UserName)
}

func TestRegister_Validation(t *testing.T) {
	s, repo := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, nil, "  ", "pw")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Register(ctx, nil, "b@x.com", "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Register(ctx, nil, "b@x.com", strings.Repeat("a", 73))
	assert.ErrorIs(t, err, common.ErrorPasswordTooLong)

	assert.Zero(t, repo.creates)
}

func TestRegister_LookupError(t *testing.T) {
	s, repo := newUserService(t)
	repo.getErr = errors.New("db error: down")

	_, err := s.Register(context.Background(), nil, "b@x.com", "pw")
	require.EqualError(t, err, "db error: down")
	assert.Zero(t, repo.creates)
}

func TestRegister_CreateError(t *testing.T) {
	s, repo := newUserService(t)
	repo.createErr = common.ErrorDuplicateEmail

	_, err := s.Register(context.Background(), nil, "b@x.com", "pw")
	require.ErrorIs(t, err, common.ErrorDuplicateEmail)
}

func TestLogin(t *testing.T) {
	s, _ := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, ptr("bob"), "b@x.com", "pw")
	require.NoError(t, err)

	u, err := s.Login(ctx, "b@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", u.Email)

	_, wrongPassword := s.Login(ctx, "b@x.com", "nope")
	_, unknownEmail := s.Login(ctx, "ghost@x.com", "pw")

	require.ErrorIs(t, wrongPassword, common.ErrorInvalidCredentials)
	require.ErrorIs(t, unknownEmail, common.ErrorInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_CorruptHashIsInvalidCredentials(t *testing.T) {
	s, repo := newUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, nil, "b@x.com", "pw")
	require.NoError(t, err)
	repo.byEmail["b@x.com"].PasswordHash = []byte("plaintext")

	_, err = s.Login(ctx, "b@x.com", "plaintext")
	require.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestLogin_StoreError(t *testing.T) {
	s, repo := newUserService(t)
	repo.getErr = errors.New("db error: down")

	_, err := s.Login(context.Background(), "b@x.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorInvalidCredentials)
	assert.Equal(t, common.KindStore, common.KindOf(err))
}
