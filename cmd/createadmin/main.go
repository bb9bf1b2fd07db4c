// Command createadmin seeds an administrator account. Run once after the
// first migration; every later role change goes through the admin API.
package main

import (
	"flag"
	"log"

	"shadownet/burnerhub/internal/config"
	"shadownet/burnerhub/internal/model"
	"shadownet/burnerhub/pkg/crypto"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("password is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &model.User{
		Username:      *username,
		PasswordHash:  hash,
		IsAdmin:       true,
		HasPostAccess: true,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Printf("admin user created: %s (%s)", admin.Username, admin.ID)
}
