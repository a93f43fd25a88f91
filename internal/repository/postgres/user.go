package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"leadflow-crm/internal/entities"
)

const (
	insertUserQuery = `
INSERT INTO users (id, username, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`

	selectUserByIDQuery = `
SELECT id, username, password_hash, role, created_at, updated_at
FROM users
WHERE id = $1`

	selectUserByUsernameQuery = `
SELECT id, username, password_hash, role, created_at, updated_at
FROM users
WHERE username = $1`
)

const uniqueViolationCode = "23505"

// CreateUser inserts a new account. Duplicate usernames map to ErrUsernameTaken.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	err := p.db.QueryRow(ctx, insertUserQuery,
		user.ID, user.Username, user.PasswordHash, string(user.Role),
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, entities.ErrUsernameTaken
		}
		p.log.Errorw("failed to insert user", "error", err, "username", user.Username)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID, "role", user.Role)
	return &user, nil
}

// GetUser fetches an account by id.
func (p *Postgres) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return p.scanUser(p.db.QueryRow(ctx, selectUserByIDQuery, id))
}

// GetUserByUsername fetches an account by its unique username.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return p.scanUser(p.db.QueryRow(ctx, selectUserByUsernameQuery, username))
}

func (p *Postgres) scanUser(row pgx.Row) (*entities.User, error) {
	var (
		u    entities.User
		role string
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = entities.Role(role)
	return &u, nil
}
