package repository

import (
	"context"
	"testing"

	"critiq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_GetByID(t *testing.T) {
	db := testDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	reviewer := seedUser(t, db, "reviewer")
	ticket := seedTicket(t, db, author.ID, "Chair")
	review := seedReview(t, db, reviewer.ID, ticket.ID, 4)

	got, err := repo.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "reviewer", got.User.Username)
	assert.Equal(t, "Chair", got.Ticket.Title)
	assert.Equal(t, "author", got.Ticket.User.Username)
}

func TestReviewRepository_ExistsForTicketAndAuthor(t *testing.T) {
	db := testDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	reviewer := seedUser(t, db, "reviewer")
	ticket := seedTicket(t, db, author.ID, "Chair")
	seedReview(t, db, reviewer.ID, ticket.ID, 4)

	exists, err := repo.ExistsForTicketAndAuthor(ctx, ticket.ID, reviewer.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForTicketAndAuthor(ctx, ticket.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReviewRepository_HardDeleteFreesUniqueSlot(t *testing.T) {
	db := testDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	reviewer := seedUser(t, db, "reviewer")
	ticket := seedTicket(t, db, author.ID, "Chair")
	review := seedReview(t, db, reviewer.ID, ticket.ID, 1)

	require.NoError(t, repo.Delete(ctx, review.ID))

	// Same (ticket, author) pair is insertable again after a hard delete.
	err := repo.Create(ctx, &models.Review{
		UserID:   reviewer.ID,
		TicketID: ticket.ID,
		Headline: "Second pass",
		Rating:   5,
		Body:     "b",
	})
	require.NoError(t, err)
}

func TestReviewRepository_ListByTicket(t *testing.T) {
	db := testDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	first := seedUser(t, db, "first")
	second := seedUser(t, db, "second")
	ticket := seedTicket(t, db, author.ID, "Chair")
	other := seedTicket(t, db, author.ID, "Desk")
	seedReview(t, db, first.ID, ticket.ID, 2)
	seedReview(t, db, second.ID, ticket.ID, 5)
	seedReview(t, db, first.ID, other.ID, 3)

	reviews, err := repo.ListByTicket(ctx, ticket.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	for _, review := range reviews {
		assert.Equal(t, ticket.ID, review.TicketID)
		assert.NotEmpty(t, review.User.Username)
	}
}

func TestReviewRepository_ListByAuthors(t *testing.T) {
	db := testDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	ticket := seedTicket(t, db, author.ID, "Chair")
	seedReview(t, db, alice.ID, ticket.ID, 2)
	seedReview(t, db, bob.ID, ticket.ID, 4)

	reviews, err := repo.ListByAuthors(ctx, []uint{alice.ID})
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, alice.ID, reviews[0].UserID)

	reviews, err = repo.ListByAuthors(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
