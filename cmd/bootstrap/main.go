// Command bootstrap prepares a fresh installation: it runs the schema
// migration and creates the first administrator account so someone can
// log in to the panel.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/identity"
	"github.com/smartsolar/backend/internal/infrastructure/auth"
	"github.com/smartsolar/backend/internal/infrastructure/config"
	"github.com/smartsolar/backend/internal/infrastructure/logger"
	"github.com/smartsolar/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		email     string
		password  string
		firstName string
		lastName  string
		logLevel  string
	)

	flag.StringVar(&email, "email", "", "Administrator email (required)")
	flag.StringVar(&password, "password", "", "Administrator password (required)")
	flag.StringVar(&firstName, "first-name", "Admin", "Administrator first name")
	flag.StringVar(&lastName, "last-name", "", "Administrator last name")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "usage: bootstrap -email admin@example.com -password secret")
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Schema migrated")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password", zap.Error(err))
	}

	userID := uuid.New().String()
	credentials := persistence.NewCredentialStore(db)
	if err := credentials.Save(ctx, persistence.Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: hash,
	}); err != nil {
		log.Fatal("Failed to save credential", zap.Error(err))
	}

	store := persistence.NewDocumentStore(db, log)
	profile := map[string]any{
		"email":     email,
		"firstName": firstName,
		"lastName":  lastName,
		"userType":  identity.RoleAdmin,
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	}
	if err := store.Upsert(ctx, document.Users, userID, profile); err != nil {
		log.Fatal("Failed to write admin profile", zap.Error(err))
	}

	log.Info("Administrator created",
		zap.String("user_id", userID),
		zap.String("email", email))
}
