package service

import (
	"context"
	"strings"
	"testing"

	"critiq/internal/database"
	"critiq/internal/models"
	"critiq/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func reviewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestReviewService_CreateReviewForTicket_Validation(t *testing.T) {
	t.Parallel()

	svc := NewReviewService(noopReviewRepo(), noopTicketRepo(), nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateReviewInput
	}{
		{"empty headline", CreateReviewInput{Rating: 3, Body: "b"}},
		{"headline too long", CreateReviewInput{Headline: strings.Repeat("x", models.MaxTitleLength+1), Rating: 3, Body: "b"}},
		{"rating below range", CreateReviewInput{Headline: "h", Rating: -1, Body: "b"}},
		{"rating above range", CreateReviewInput{Headline: "h", Rating: 6, Body: "b"}},
		{"empty body", CreateReviewInput{Headline: "h", Rating: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReviewForTicket(ctx, 1, 10, tt.input)
			assertAppErrorCode(t, err, "VALIDATION_ERROR")
		})
	}
}

func TestReviewService_CreateReviewForTicket_BoundaryRatings(t *testing.T) {
	t.Parallel()

	reviewRepo := noopReviewRepo()
	var created []*models.Review
	reviewRepo.createFn = func(_ context.Context, review *models.Review) error {
		review.ID = uint(len(created) + 1)
		created = append(created, review)
		return nil
	}
	svc := NewReviewService(reviewRepo, noopTicketRepo(), nil)

	for _, rating := range []int{models.MinRating, models.MaxRating} {
		_, err := svc.CreateReviewForTicket(context.Background(), 1, 10, CreateReviewInput{
			Headline: "h", Rating: rating, Body: "b",
		})
		require.NoError(t, err)
	}
	assert.Len(t, created, 2)
}

func TestReviewService_CreateReviewForTicket_MissingTicket(t *testing.T) {
	t.Parallel()

	ticketRepo := noopTicketRepo()
	ticketRepo.getByIDFn = func(_ context.Context, id uint) (*models.Ticket, error) {
		return nil, models.NewNotFoundError("Ticket", id)
	}
	svc := NewReviewService(noopReviewRepo(), ticketRepo, nil)

	_, err := svc.CreateReviewForTicket(context.Background(), 1, 10, CreateReviewInput{
		Headline: "h", Rating: 3, Body: "b",
	})
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestReviewService_CreateReviewForTicket_Duplicate(t *testing.T) {
	t.Parallel()

	reviewRepo := noopReviewRepo()
	reviewRepo.existsForTicketAndAuthorFn = func(_ context.Context, _, _ uint) (bool, error) {
		return true, nil
	}
	svc := NewReviewService(reviewRepo, noopTicketRepo(), nil)

	_, err := svc.CreateReviewForTicket(context.Background(), 1, 10, CreateReviewInput{
		Headline: "h", Rating: 3, Body: "b",
	})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestReviewService_CreateReviewForTicket_RaceOnUniqueIndex(t *testing.T) {
	t.Parallel()

	// A concurrent submission lands between the existence check and the
	// insert: the check sees nothing, the insert hits the unique
	// (ticket, author) index.
	reviewRepo := noopReviewRepo()
	reviewRepo.createFn = func(_ context.Context, _ *models.Review) error {
		return models.NewInternalError(gorm.ErrDuplicatedKey)
	}
	svc := NewReviewService(reviewRepo, noopTicketRepo(), nil)

	_, err := svc.CreateReviewForTicket(context.Background(), 1, 10, CreateReviewInput{
		Headline: "h", Rating: 3, Body: "b",
	})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestReviewService_CreateReviewWithTicket(t *testing.T) {
	t.Parallel()

	db := reviewTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: 1, Username: "author", Email: "a@example.com", Password: "x"}).Error)

	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewTicketRepository(db), db)

	review, err := svc.CreateReviewWithTicket(context.Background(), 1,
		CreateTicketInput{Title: "My chair", Description: "Is it any good?"},
		CreateReviewInput{Headline: "It wobbles", Rating: 2, Body: "Would not sit again."},
	)
	require.NoError(t, err)
	assert.Equal(t, "It wobbles", review.Headline)
	assert.Equal(t, 2, review.Rating)
	assert.Equal(t, "My chair", review.Ticket.Title)
	assert.Equal(t, review.Ticket.ID, review.TicketID)

	var ticketCount, reviewCount int64
	db.Model(&models.Ticket{}).Count(&ticketCount)
	db.Model(&models.Review{}).Count(&reviewCount)
	assert.EqualValues(t, 1, ticketCount)
	assert.EqualValues(t, 1, reviewCount)
}

func TestReviewService_CreateReviewWithTicket_InvalidReviewLeavesNoTicket(t *testing.T) {
	t.Parallel()

	db := reviewTestDB(t)
	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewTicketRepository(db), db)

	_, err := svc.CreateReviewWithTicket(context.Background(), 1,
		CreateTicketInput{Title: "My chair", Description: "Is it any good?"},
		CreateReviewInput{Headline: "h", Rating: 9, Body: "b"},
	)
	assertAppErrorCode(t, err, "VALIDATION_ERROR")

	var ticketCount int64
	db.Model(&models.Ticket{}).Count(&ticketCount)
	assert.EqualValues(t, 0, ticketCount)
}

func TestReviewService_UpdateReview_NotAuthor(t *testing.T) {
	t.Parallel()

	reviewRepo := noopReviewRepo()
	reviewRepo.getByIDFn = func(_ context.Context, id uint) (*models.Review, error) {
		return &models.Review{ID: id, UserID: 2}, nil
	}
	svc := NewReviewService(reviewRepo, noopTicketRepo(), nil)

	_, err := svc.UpdateReview(context.Background(), 1, 5, CreateReviewInput{
		Headline: "h", Rating: 3, Body: "b",
	})
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestReviewService_UpdateReview(t *testing.T) {
	t.Parallel()

	reviewRepo := noopReviewRepo()
	reviewRepo.getByIDFn = func(_ context.Context, id uint) (*models.Review, error) {
		return &models.Review{ID: id, UserID: 1, Headline: "old", Rating: 1, Body: "old"}, nil
	}
	var updated *models.Review
	reviewRepo.updateFn = func(_ context.Context, review *models.Review) error {
		updated = review
		return nil
	}
	svc := NewReviewService(reviewRepo, noopTicketRepo(), nil)

	review, err := svc.UpdateReview(context.Background(), 1, 5, CreateReviewInput{
		Headline: "Better now", Rating: 4, Body: "Fixed the wobble.",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Better now", review.Headline)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_DeleteReview_NotAuthor(t *testing.T) {
	t.Parallel()

	reviewRepo := noopReviewRepo()
	reviewRepo.getByIDFn = func(_ context.Context, id uint) (*models.Review, error) {
		return &models.Review{ID: id, UserID: 2}, nil
	}
	svc := NewReviewService(reviewRepo, noopTicketRepo(), nil)

	err := svc.DeleteReview(context.Background(), 1, 5)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestReviewService_DeleteThenReReview(t *testing.T) {
	t.Parallel()

	db := reviewTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: 1, Username: "author", Email: "a@example.com", Password: "x"}).Error)
	require.NoError(t, db.Create(&models.User{ID: 2, Username: "reviewer", Email: "r@example.com", Password: "x"}).Error)
	require.NoError(t, db.Create(&models.Ticket{ID: 10, Title: "t", UserID: 1}).Error)

	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewTicketRepository(db), db)
	ctx := context.Background()

	first, err := svc.CreateReviewForTicket(ctx, 2, 10, CreateReviewInput{Headline: "h", Rating: 3, Body: "b"})
	require.NoError(t, err)

	// A second review of the same ticket by the same user is rejected
	_, err = svc.CreateReviewForTicket(ctx, 2, 10, CreateReviewInput{Headline: "h2", Rating: 4, Body: "b2"})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")

	// Deleting frees the slot for a fresh review
	require.NoError(t, svc.DeleteReview(ctx, 2, first.ID))
	_, err = svc.CreateReviewForTicket(ctx, 2, 10, CreateReviewInput{Headline: "h3", Rating: 5, Body: "b3"})
	require.NoError(t, err)
}
