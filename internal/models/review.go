// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Rating bounds for reviews, inclusive.
const (
	MinRating = 0
	MaxRating = 5
)

// Review is a rated response to a ticket. A user may review a given
// ticket at most once; the (ticket_id, user_id) unique index enforces it.
// Reviews are hard-deleted so the unique index never blocks a re-review
// after deletion.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"not null;uniqueIndex:idx_review_ticket_user" json:"ticket_id"`
	Ticket    Ticket    `gorm:"foreignKey:TicketID" json:"ticket"`
	Headline  string    `gorm:"not null" json:"headline"`
	Rating    int       `gorm:"not null" json:"rating"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_review_ticket_user;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
