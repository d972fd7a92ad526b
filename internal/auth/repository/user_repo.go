package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resume-site/resume-backend/internal/auth/domain"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a user by their unique username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
select id, username, password_hash
from users
where username = $1;
`
	var u domain.User
	err := r.db.QueryRow(ctx, q, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// EnsureAdmin seeds the admin account on first start; an existing
// username is left untouched.
func (r *UserRepository) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	const q = `
insert into users (username, password_hash)
values ($1, $2)
on conflict (username) do nothing;
`
	_, err := r.db.Exec(ctx, q, username, passwordHash)
	return err
}
