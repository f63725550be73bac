// Command seed populates the configured database with demo data. It is
// idempotent: a database that already holds users is left untouched.
package main

import (
	"flag"
	"log"

	"github.com/workflowhq/workflow-api/internal/config"
	"github.com/workflowhq/workflow-api/internal/storage"
	"github.com/workflowhq/workflow-api/internal/storage/gormstore"
)

func main() {
	force := flag.Bool("force", false, "seed even if the database already holds users")
	flag.Parse()

	cfg := config.Load()

	store, err := gormstore.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := store.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if !*force {
		users, err := store.GetUsers()
		if err != nil {
			log.Fatalf("Failed to check existing data: %v", err)
		}
		if len(users) > 0 {
			log.Printf("Database already has %d users, skipping seed (use -force to override)", len(users))
			return
		}
	}

	if err := storage.SeedDemoData(store); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
	log.Println("Demo data seeded")
}
