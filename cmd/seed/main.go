package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"bragboard/internal/cache"
	"bragboard/internal/config"
	"bragboard/internal/db"
	"bragboard/internal/repository"
	"bragboard/internal/service"
	"bragboard/pkg/logger"
)

// SeedUser is one entry of the demo-data fixture file.
type SeedUser struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func main() {
	fixturePath := flag.String("fixture", "seed/users.json", "path to the demo user fixture")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	users, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatal().Err(err).Str("fixture", *fixturePath).Msg("load fixture")
	}
	log.Info().Int("count", len(users)).Msg("fixture loaded")

	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	authService := service.NewAuthService(userRepo, tokenRepo, employeeRepo, (*cache.Client)(nil))

	seeded, skipped := 0, 0
	for _, u := range users {
		_, err := authService.Signup(ctx, u.Email, u.FullName, u.Password, u.Role)
		switch {
		case err == service.ErrUserExists:
			skipped++
		case err != nil:
			log.Fatal().Err(err).Str("email", u.Email).Msg("seed user")
		default:
			seeded++
		}
	}

	log.Info().
		Int("seeded", seeded).
		Int("skipped", skipped).
		Msg("seed completed")
}

// loadFixture reads and parses the JSON fixture file.
func loadFixture(path string) ([]SeedUser, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var users []SeedUser
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return users, nil
}
