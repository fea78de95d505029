package seed

import (
	"fmt"
	"log"

	"critiq/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumTickets  int
	ShouldClean bool
	SkipBcrypt  bool
	MaxDays     int
}

// Seed populates the database with test data: a mesh of users, follow
// edges between them, tickets, and reviews answering a share of the
// tickets.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d tickets...", opts.NumUsers, opts.NumTickets)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users", len(users))

	// Each user follows roughly a third of the others
	edges := 0
	for _, follower := range users {
		for _, followed := range users {
			if follower.ID == followed.ID {
				continue
			}
			if f.rand.Float32() < 0.33 {
				if err := f.CreateFollow(follower, followed); err != nil {
					return fmt.Errorf("failed to create follow edge: %w", err)
				}
				edges++
			}
		}
	}
	log.Printf("Created %d follow edges", edges)

	tickets := 0
	reviews := 0
	for i := 0; i < opts.NumTickets; i++ {
		author := users[f.rand.Intn(len(users))]
		ticket, err := f.CreateTicket(author)
		if err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		tickets++

		// Roughly half the tickets get a review from another user
		if f.rand.Float32() < 0.5 {
			reviewer := users[f.rand.Intn(len(users))]
			if reviewer.ID == author.ID {
				continue
			}
			if _, err := f.CreateReview(reviewer, ticket); err != nil {
				return fmt.Errorf("failed to create review: %w", err)
			}
			reviews++
		}
	}
	log.Printf("Created %d tickets and %d reviews", tickets, reviews)

	log.Println("Database seeding completed successfully")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE reviews, tickets, user_follows, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
