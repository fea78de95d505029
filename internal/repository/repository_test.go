package repository

import (
	"testing"

	"critiq/internal/database"
	"critiq/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTicket(t *testing.T, db *gorm.DB, userID uint, title string) *models.Ticket {
	t.Helper()
	ticket := &models.Ticket{UserID: userID, Title: title, Description: "d"}
	require.NoError(t, db.Create(ticket).Error)
	return ticket
}

func seedReview(t *testing.T, db *gorm.DB, userID, ticketID uint, rating int) *models.Review {
	t.Helper()
	review := &models.Review{
		UserID:   userID,
		TicketID: ticketID,
		Headline: "h",
		Rating:   rating,
		Body:     "b",
	}
	require.NoError(t, db.Create(review).Error)
	return review
}
