// Command create-admin bootstraps the first superadmin account.
//
// Usage:
//
//	create-admin -email admin@example.com -name "Site Admin" -password 'secret'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/luminainteriors/lumina-be/internal/auth"
	"github.com/luminainteriors/lumina-be/internal/models"
	"github.com/luminainteriors/lumina-be/internal/storage"
	"github.com/luminainteriors/lumina-be/internal/storage/postgres"
)

func main() {
	email := flag.String("email", "", "login email for the new superadmin")
	name := flag.String("name", "Administrator", "display name")
	password := flag.String("password", "", "login password (min 8 chars)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(*password) < 8 {
		logger.Error("password must be at least 8 characters")
		os.Exit(2)
	}

	_ = godotenv.Load()
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Error("DATABASE_URL is not set")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := postgres.New(ctx, databaseURL)
	if err != nil {
		logger.Error("connecting to database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		logger.Error("hashing password", "error", err)
		os.Exit(1)
	}

	user, err := store.CreateUser(ctx, models.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: hash,
		Role:         models.RoleSuperadmin,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Error("a user with that email already exists", "email", *email)
		} else {
			logger.Error("creating user", "error", err)
		}
		os.Exit(1)
	}

	fmt.Printf("superadmin created: id=%d email=%s\n", user.ID, user.Email)
}
