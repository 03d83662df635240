package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	account "auction-backend/internal/accountService"
	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/auth"
	catalog "auction-backend/internal/catalogService"
	lifecycle "auction-backend/internal/lifecycleService"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/internal/server"
	"auction-backend/utils"
)

func main() {
	args := ParseArgs()
	if !args.Validate() {
		fmt.Fprintln(os.Stderr, "invalid arguments: server-url, jwt-secret and token-ttl-hours are required")
		os.Exit(1)
	}

	repo, err := buildRepository(args.DB)
	if err != nil {
		utils.Fatal("failed to initialize storage", map[string]any{"error": err.Error()})
	}

	tokens := auth.NewTokenIssuer([]byte(args.JWTSecret), time.Duration(args.TokenTTLHours)*time.Hour)

	accountService := account.NewService(repo, tokens, args.Admin.Email)
	catalogService := catalog.NewService(repo)
	lifecycleService := lifecycle.NewService(repo)

	if err := seedAdmin(repo, accountService, args.Admin); err != nil {
		utils.Fatal("failed to seed admin account", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(repo, tokens, accountService, catalogService, lifecycleService)

	utils.Info("starting auction server", map[string]any{"addr": args.ServerURL})
	if err := router.Run(args.ServerURL); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// buildRepository opens the PostgreSQL store, or falls back to the in-memory
// store when no database host is configured
func buildRepository(cfg DBArgs) (repository.AuctionDB, error) {
	if cfg.Host == "" {
		utils.Warn("no database configured, using in-memory store", nil)
		return repository.NewMemoryRepo(), nil
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres at %s: %w", cfg.Host, err)
	}

	repo := repository.NewGormRepo(db)
	if err := repo.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return repo, nil
}

// seedAdmin ensures the bootstrap admin account exists. Without it a fresh
// deployment has no way to log in and create other accounts.
func seedAdmin(repo repository.AuctionDB, accountService *account.Service, cfg AdminArgs) error {
	if cfg.Email == "" || cfg.Password == "" {
		utils.Warn("admin credentials not configured, skipping bootstrap account", nil)
		return nil
	}

	_, err := repo.GetUserByEmail(cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auctionerrors.ErrUserNotFound) {
		return err
	}

	user, err := accountService.CreateUser(account.CreateUserInput{
		Email:       cfg.Email,
		Password:    cfg.Password,
		CompanyName: cfg.Company,
		Role:        model.RoleAdmin,
	})
	if err != nil {
		return err
	}

	utils.Info("bootstrap admin account created", map[string]any{
		"user_id": user.UserID,
		"email":   user.Email,
	})
	return nil
}
