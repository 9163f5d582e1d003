package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nasayimclean/webapi/internal/config"
	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository/postgres"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run cmd/create-staff/main.go <name> <email> [api-token]")
		fmt.Println("Example: go run cmd/create-staff/main.go \"Ahmed Saleh\" ahmed@nasayimclean.example")
		os.Exit(1)
	}

	name := os.Args[1]
	email := os.Args[2]

	// A token may be supplied, otherwise one is generated
	apiToken := uuid.NewString()
	if len(os.Args) > 3 {
		apiToken = os.Args[3]
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// Hash the API token
	tokenHash, err := bcrypt.GenerateFromPassword([]byte(apiToken), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash API token: %v\n", err)
		os.Exit(1)
	}

	// Create repositories
	repos := postgres.NewRepositories(db, logger)

	// Create staff user
	user := &domain.User{
		Name:         name,
		Email:        email,
		Role:         domain.UserRoleAdmin,
		APITokenHash: string(tokenHash),
		IsActive:     true,
	}

	err = repos.User.Create(context.Background(), user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create staff user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Staff user created successfully!\n\n")
	fmt.Printf("User ID: %d\n", user.ID)
	fmt.Printf("Name: %s\n", user.Name)
	fmt.Printf("API Token: %s\n", apiToken)
	fmt.Printf("\nIMPORTANT: Save this API token securely! You won't be able to see it again.\n")
	fmt.Printf("\nUse this token in the Authorization header:\n")
	fmt.Printf("Authorization: Bearer %s\n", apiToken)
}
