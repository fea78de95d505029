package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"critiq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTicket(t *testing.T) {
	s, db := newTestServer(t)
	user := createTestUser(t, db, "author")
	app := testApp(s, user.ID)

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, app, "/api/tickets", map[string]string{
			"title":       "  Is this chair any good?  ",
			"description": "Thinking about buying it.",
		})
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var ticket models.Ticket
		require.NoError(t, db.Where("user_id = ?", user.ID).First(&ticket).Error)
		assert.Equal(t, "Is this chair any good?", ticket.Title)
	})

	t.Run("Missing Title", func(t *testing.T) {
		resp := postJSON(t, app, "/api/tickets", map[string]string{
			"description": "No title here.",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetTicket(t *testing.T) {
	s, db := newTestServer(t)
	user := createTestUser(t, db, "author")
	ticket := &models.Ticket{UserID: user.ID, Title: "Chair", Description: "d"}
	require.NoError(t, db.Create(ticket).Error)

	app := testApp(s, user.ID)

	t.Run("Found", func(t *testing.T) {
		var got models.Ticket
		resp := getJSON(t, app, "/api/tickets/1", &got)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Chair", got.Title)
	})

	t.Run("Not Found", func(t *testing.T) {
		resp := getJSON(t, app, "/api/tickets/999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Bad ID", func(t *testing.T) {
		resp := getJSON(t, app, "/api/tickets/abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateTicket(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	ticket := &models.Ticket{UserID: author.ID, Title: "Before", Description: "d"}
	require.NoError(t, db.Create(ticket).Error)

	t.Run("Non-Author Forbidden", func(t *testing.T) {
		app := testApp(s, other.ID)
		resp := putJSON(t, app, "/api/tickets/1", map[string]string{
			"title":       "Hijacked",
			"description": "d",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Author Can Update", func(t *testing.T) {
		app := testApp(s, author.ID)
		resp := putJSON(t, app, "/api/tickets/1", map[string]string{
			"title":       "After",
			"description": "updated",
		})
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated models.Ticket
		require.NoError(t, db.First(&updated, ticket.ID).Error)
		assert.Equal(t, "After", updated.Title)
	})
}

func TestDeleteTicket(t *testing.T) {
	s, db := newTestServer(t)
	author := createTestUser(t, db, "author")
	reviewer := createTestUser(t, db, "reviewer")
	ticket := &models.Ticket{UserID: author.ID, Title: "Chair", Description: "d"}
	require.NoError(t, db.Create(ticket).Error)
	require.NoError(t, db.Create(&models.Review{
		UserID: reviewer.ID, TicketID: ticket.ID, Headline: "h", Rating: 4, Body: "b",
	}).Error)

	t.Run("Non-Author Forbidden", func(t *testing.T) {
		app := testApp(s, reviewer.ID)
		req := httptest.NewRequest(http.MethodDelete, "/api/tickets/1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Author Delete Removes Reviews", func(t *testing.T) {
		app := testApp(s, author.ID)
		req := httptest.NewRequest(http.MethodDelete, "/api/tickets/1", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reviewCount int64
		require.NoError(t, db.Model(&models.Review{}).Where("ticket_id = ?", ticket.ID).Count(&reviewCount).Error)
		assert.Zero(t, reviewCount)
	})
}
