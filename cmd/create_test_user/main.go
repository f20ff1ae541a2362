package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/db"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// Seeds a known user for local development and prints a signed token for it.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	email := "test@example.com"

	u, err := repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		hash, err := auth.HashPassword("secret1", 10)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		u = &domain.User{Email: email, PasswordHash: hash, Name: "Tester"}
		if err := repo.Create(ctx, u); err != nil {
			log.Fatalf("create user failed: %v", err)
		}
		log.Printf("user created id=%d\n", u.ID)
	} else if err != nil {
		log.Fatalf("get by email failed: %v", err)
	} else {
		log.Printf("user already exists id=%d\n", u.ID)
	}

	verifier := auth.NewJWTVerifier([]byte(secret), 7*24*time.Hour)
	token, err := verifier.Generate(u.ID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
