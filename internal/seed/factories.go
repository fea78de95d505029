// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"critiq/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, opts: opts, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// spreadCreatedAt returns a timestamp a random distance in the past so
// seeded feeds interleave naturally.
func (f *Factory) spreadCreatedAt() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "seed-password-1"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("seed-password-1"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTicket constructs and persists a sample `models.Ticket` for the
// given user, with a created_at spread over the recent past.
func (f *Factory) CreateTicket(user *models.User, overrides ...func(*models.Ticket)) (*models.Ticket, error) {
	ticket := &models.Ticket{
		Title:       gofakeit.Sentence(5),
		Description: gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:      user.ID,
	}
	ticket.CreatedAt = f.spreadCreatedAt()

	if f.rand.Float32() < 0.4 {
		ticket.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	for _, override := range overrides {
		override(ticket)
	}

	if err := f.db.Create(ticket).Error; err != nil {
		return nil, err
	}
	return ticket, nil
}

// CreateReview constructs and persists a sample `models.Review` answering
// the provided ticket, authored by the provided user.
func (f *Factory) CreateReview(user *models.User, ticket *models.Ticket, overrides ...func(*models.Review)) (*models.Review, error) {
	review := &models.Review{
		TicketID: ticket.ID,
		Headline: gofakeit.Sentence(4),
		Rating:   f.rand.Intn(models.MaxRating + 1),
		Body:     gofakeit.Paragraph(1, 2, 6, "\n"),
		UserID:   user.ID,
	}
	// Reviews come after the ticket they answer
	review.CreatedAt = ticket.CreatedAt.Add(time.Duration(f.rand.Intn(72)+1) * time.Hour)

	for _, override := range overrides {
		override(review)
	}

	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// CreateFollow persists a follow edge from follower to followed.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	edge := &models.UserFollow{
		FollowerID: follower.ID,
		FollowedID: followed.ID,
	}
	return f.db.Create(edge).Error
}
