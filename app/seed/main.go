package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/raihanmz/portfolio-backend/config"
	"github.com/raihanmz/portfolio-backend/internal/models"
	pgrepo "github.com/raihanmz/portfolio-backend/internal/repositories/postgres"
	"github.com/raihanmz/portfolio-backend/internal/utils"
)

// Seeds the admin account and the default profile row. Safe to re-run:
// both writes are upserts.
func main() {
	_ = godotenv.Load()

	log.Println("Starting seed...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := config.OpenPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Profile{}, &models.Project{}, &models.Skill{},
		&models.Education{}, &models.Experience{}, &models.ContactMessage{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migrations completed")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := os.Getenv("SEED_ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}
	if name == "" {
		name = "Admin"
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ctx := context.Background()

	adminRepo := pgrepo.NewAdminRepo(db)
	if err := adminRepo.Upsert(ctx, &models.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	log.Printf("admin ready: %s", email)

	profileRepo := pgrepo.NewProfileRepo(db)
	if _, err := profileRepo.Get(ctx); err != nil {
		if err := profileRepo.Upsert(ctx, &models.Profile{
			ID:        models.DefaultProfileID,
			FullName:  name,
			Email:     email,
			UpdatedAt: time.Now().UTC(),
		}); err != nil {
			log.Fatalf("failed to seed profile: %v", err)
		}
		log.Println("default profile created")
	}

	log.Println("Seed completed successfully!")
}
