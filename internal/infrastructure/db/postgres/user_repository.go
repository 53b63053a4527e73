package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

const (
	insertUserQuery   = `INSERT INTO users (name, username, password, date_hired) VALUES ($1, $2, $3, $4) RETURNING id`
	selectUserByID    = `SELECT id, name, username, password, date_hired FROM users WHERE id = $1`
	selectUserByName  = `SELECT id, name, username, password, date_hired FROM users WHERE username = $1`
	selectUsersExcept = `SELECT id, name, username, password, date_hired FROM users WHERE id <> $1 ORDER BY id`
)

// UserRepository implements ports.UserRepository using PostgreSQL.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	out := *user
	err := r.db.QueryRowxContext(ctx, insertUserQuery,
		user.Name, user.Username, user.PasswordHash, user.DateHired).Scan(&out.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, selectUserByID, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, selectUserByName, username)
}

func (r *UserRepository) ListExcept(ctx context.Context, id int64) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, selectUsersExcept, id); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
