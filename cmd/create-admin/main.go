package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/itzmejanak/devalaya-backend/internal/config"
	"github.com/itzmejanak/devalaya-backend/internal/database"
	"github.com/itzmejanak/devalaya-backend/internal/logger"
	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/repository"
	"github.com/itzmejanak/devalaya-backend/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Close(context.Background())

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}

	// ─── Initialize Service ────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(cfg, userRepo)
	userService := service.NewUserService(userRepo, authService)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin User ===")

	// Username
	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		fmt.Println("Error: Username must be at least 3 characters")
		return
	}

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	req := &model.CreateUserRequest{
		Username: username,
		Password: password,
		Email:    email,
		Name:     name,
	}

	user, err := userService.Create(ctx, req)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin user")
	}

	fmt.Printf("\nSuccess! Admin '%s' (%s) created with ID: %s\n", user.Name, user.Username, user.ID.Hex())
}
