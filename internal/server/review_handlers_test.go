package server

import (
	"net/http"
	"testing"

	"critiq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewForTicket(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	reviewer := createTestUser(t, db, "reviewer")
	ticket := &models.Ticket{UserID: author.ID, Title: "Chair", Description: "d"}
	require.NoError(t, db.Create(ticket).Error)

	app := testApp(s, reviewer.ID)

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, app, "/api/tickets/1/reviews", map[string]any{
			"headline": "Solid build",
			"rating":   4,
			"body":     "Held up for a year.",
		})
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var review models.Review
		require.NoError(t, db.Where("ticket_id = ? AND user_id = ?", ticket.ID, reviewer.ID).First(&review).Error)
		assert.Equal(t, 4, review.Rating)
	})

	t.Run("Duplicate Rejected", func(t *testing.T) {
		resp := postJSON(t, app, "/api/tickets/1/reviews", map[string]any{
			"headline": "Second opinion",
			"rating":   1,
			"body":     "Changed my mind.",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Rating Out Of Range", func(t *testing.T) {
		resp := postJSON(t, app, "/api/tickets/1/reviews", map[string]any{
			"headline": "Too good",
			"rating":   6,
			"body":     "b",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing Ticket", func(t *testing.T) {
		resp := postJSON(t, app, "/api/tickets/999/reviews", map[string]any{
			"headline": "h",
			"rating":   3,
			"body":     "b",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCreateReviewWithTicket(t *testing.T) {
	s, db := newTestServer(t)
	user := createTestUser(t, db, "spontaneous")
	app := testApp(s, user.ID)

	t.Run("Creates Both", func(t *testing.T) {
		resp := postJSON(t, app, "/api/reviews", map[string]any{
			"ticket": map[string]string{
				"title":       "Standing desk",
				"description": "Reviewing one I already own.",
			},
			"review": map[string]any{
				"headline": "Worth it",
				"rating":   5,
				"body":     "My back thanks me.",
			},
		})
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var ticketCount, reviewCount int64
		require.NoError(t, db.Model(&models.Ticket{}).Count(&ticketCount).Error)
		require.NoError(t, db.Model(&models.Review{}).Count(&reviewCount).Error)
		assert.EqualValues(t, 1, ticketCount)
		assert.EqualValues(t, 1, reviewCount)
	})

	t.Run("Invalid Review Leaves No Ticket", func(t *testing.T) {
		resp := postJSON(t, app, "/api/reviews", map[string]any{
			"ticket": map[string]string{
				"title":       "Orphan candidate",
				"description": "d",
			},
			"review": map[string]any{
				"headline": "h",
				"rating":   9,
				"body":     "b",
			},
		})
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var count int64
		require.NoError(t, db.Model(&models.Ticket{}).Where("title = ?", "Orphan candidate").Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestGetTicketReviews(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	reviewer := createTestUser(t, db, "reviewer")
	ticket := &models.Ticket{UserID: author.ID, Title: "Chair", Description: "d"}
	require.NoError(t, db.Create(ticket).Error)
	require.NoError(t, db.Create(&models.Review{
		UserID: reviewer.ID, TicketID: ticket.ID, Headline: "h", Rating: 2, Body: "b",
	}).Error)

	app := testApp(s, author.ID)

	var reviews []models.Review
	resp := getJSON(t, app, "/api/tickets/1/reviews", &reviews)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, reviews, 1)
	assert.Equal(t, reviewer.ID, reviews[0].UserID)
}

func TestUpdateReview(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	reviewer := createTestUser(t, db, "reviewer")
	ticket := &models.Ticket{UserID: author.ID, Title: "Chair", Description: "d"}
	require.NoError(t, db.Create(ticket).Error)
	review := &models.Review{UserID: reviewer.ID, TicketID: ticket.ID, Headline: "Before", Rating: 2, Body: "b"}
	require.NoError(t, db.Create(review).Error)

	t.Run("Non-Author Forbidden", func(t *testing.T) {
		app := testApp(s, author.ID)
		resp := putJSON(t, app, "/api/reviews/1", map[string]any{
			"headline": "Hijacked",
			"rating":   0,
			"body":     "b",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Author Can Update", func(t *testing.T) {
		app := testApp(s, reviewer.ID)
		resp := putJSON(t, app, "/api/reviews/1", map[string]any{
			"headline": "After",
			"rating":   5,
			"body":     "Upgraded opinion.",
		})
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated models.Review
		require.NoError(t, db.First(&updated, review.ID).Error)
		assert.Equal(t, "After", updated.Headline)
		assert.Equal(t, 5, updated.Rating)
	})
}
