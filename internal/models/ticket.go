// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxTitleLength bounds ticket titles and review headlines.
const MaxTitleLength = 200

// Ticket is a review request: a user asks the people who follow them
// for a review of something (a book, an album, anything).
type Ticket struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"user"`
	// ReviewsCount is not persisted; computed at query time
	ReviewsCount int            `gorm:"->" json:"reviews_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Reviews []Review `gorm:"foreignKey:TicketID" json:"reviews,omitempty"`
}
