package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
)

// UserRepo provides persistence operations for admin accounts.
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// GetByEmail returns the user with the given email, or
// domain.ErrInvalidCredentials when no such user exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
select id, email, name, password_hash, created_at
from users
where email = $1;
`
	var u domain.User
	err := r.db.QueryRow(ctx, q, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new account. A duplicate email is reported as
// domain.ErrEmailTaken.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string, name *string) (*domain.User, error) {
	const q = `
insert into users (email, password_hash, name)
values ($1, $2, $3)
returning id, email, name, password_hash, created_at;
`
	var u domain.User
	err := r.db.QueryRow(ctx, q, email, passwordHash, name).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		// unique violation on email
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}
