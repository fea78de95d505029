// Command seed runs the database seeder for Critiq.
package main

import (
	"flag"
	"log"

	"critiq/internal/config"
	"critiq/internal/database"
	"critiq/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numTickets := flag.Int("tickets", 200, "Number of tickets to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding (dev only)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d tickets, clean=%v\n", *numUsers, *numTickets, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumTickets:  *numTickets,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Test users have the password: seed-password-1")
}
