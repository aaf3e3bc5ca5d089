// This file implements UserService, which handles registration and
// password login. No token or session is issued on login.

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tallerkeeper/internal/common"
	"github.com/dmitrijs2005/tallerkeeper/internal/dbx"
	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/models"
	"github.com/dmitrijs2005/tallerkeeper/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordLength is the most bcrypt will hash.
const maxPasswordLength = 72

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt password hash
// - Login: verify credentials
type UserService struct {
	pool        *dbx.Pool
	repomanager repomanager.RepositoryManager
	cost        int
	dummyHash   []byte
	logger      logging.Logger
}

// NewUserService constructs a UserService hashing at the given bcrypt cost.
func NewUserService(pool *dbx.Pool, m repomanager.RepositoryManager, cost int, logger logging.Logger) (*UserService, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	// compared against when the email is unknown, so both failures take as long
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}
	return &UserService{
		pool:        pool,
		repomanager: m,
		cost:        cost,
		dummyHash:   dummy,
		logger:      logger.With("module", "user_service"),
	}, nil
}

// Register creates a user unless one with the same email already exists,
// in which case common.ErrorDuplicateEmail is returned.
func (s *UserService) Register(ctx context.Context, userName *string, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}
	if len(password) > maxPasswordLength {
		return nil, common.ErrorPasswordTooLong
	}

	var user *models.User
	err := s.pool.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		repo := s.repomanager.Users(conn)

		_, err := repo.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			return common.ErrorDuplicateEmail
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user, err = repo.Create(ctx, &models.User{UserName: userName, Email: email, PasswordHash: hash})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login checks password against the stored hash for email. Unknown email
// and wrong password both yield common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user *models.User
	err := s.pool.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		user, err = s.repomanager.Users(conn).GetUserByEmail(ctx, strings.TrimSpace(email))
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, common.ErrorInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn(ctx, "stored hash unusable", "user_id", user.ID, "error", err.Error())
		}
		return nil, common.ErrorInvalidCredentials
	}

	return user, nil
}
