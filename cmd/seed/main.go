// Package main provisions the bootstrap admin account. Safe to run
// repeatedly: it skips when the username already exists.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"

	"leadflow-crm/config"
	"leadflow-crm/internal/auth"
	"leadflow-crm/internal/entities"
	"leadflow-crm/internal/repository"
	"leadflow-crm/pkg/logger"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		os.Exit(1)
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		os.Exit(1)
	}
	defer func() { _ = repo.OnStop(ctx) }()

	if _, err := repo.GetUserByUsername(ctx, defaultAdminUsername); err == nil {
		log.Infow("admin user already exists, skipping")
		return
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		log.Errorw("admin lookup failed", "error", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(defaultAdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		log.Errorw("hash password failed", "error", err)
		os.Exit(1)
	}

	user, err := repo.CreateUser(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		Role:         entities.RoleAdmin,
	})
	if err != nil {
		log.Errorw("create admin failed", "error", err)
		os.Exit(1)
	}

	log.Infow("admin user created, change the password after first login",
		"user_id", user.ID, "username", user.Username)
}
