// Package domain contains application usecases orchestrating business logic by account.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"leadflow-crm/internal/auth"
	"leadflow-crm/internal/entities"
)

// Register creates an account with a salted irreversible password hash.
// Role defaults to admin when omitted.
func (u *Usecase) Register(ctx context.Context, creds entities.Credentials) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	creds.Username = strings.TrimSpace(creds.Username)
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrInvalidArgument, err)
	}
	if creds.Role == "" {
		creds.Role = entities.RoleAdmin
	}
	if !creds.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be admin or agent", entities.ErrInvalidArgument)
	}

	hash, err := auth.HashPassword(creds.Password, u.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.repo.CreateUser(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     creds.Username,
		PasswordHash: hash,
		Role:         creds.Role,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login verifies credentials and issues a signed token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, creds entities.Credentials) (string, *entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.GetUserByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", nil, entities.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, creds.Password) {
		return "", nil, entities.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(entities.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	u.log.Infow("user logged in", "user_id", user.ID)
	return token, user, nil
}

// Me returns the profile of the authenticated user.
func (u *Usecase) Me(ctx context.Context, userID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, userID)
}
