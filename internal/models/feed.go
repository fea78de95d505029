package models

import (
	"time"
)

// FeedContentType discriminates the two entity kinds a feed can carry.
type FeedContentType string

const (
	// FeedContentTicket marks a feed item wrapping a ticket.
	FeedContentTicket FeedContentType = "TICKET"
	// FeedContentReview marks a feed item wrapping a review.
	FeedContentReview FeedContentType = "REVIEW"
)

// FeedItem is the transient view-model the feed is assembled from: a
// tagged union of ticket/review plus viewer-specific annotations.
// Derived display state lives here, never on the entities themselves.
type FeedItem struct {
	ContentType FeedContentType `json:"content_type"`
	CreatedAt   time.Time       `json:"created_at"`
	Ticket      *Ticket         `json:"ticket,omitempty"`
	Review      *Review         `json:"review,omitempty"`
	// ViewerHasReviewed is set for ticket items only: whether the
	// requesting viewer has already answered this ticket.
	ViewerHasReviewed bool `json:"viewer_has_reviewed,omitempty"`
}

// ItemID returns the id of the wrapped entity, used as the sort tiebreak.
func (f *FeedItem) ItemID() uint {
	if f.ContentType == FeedContentTicket && f.Ticket != nil {
		return f.Ticket.ID
	}
	if f.Review != nil {
		return f.Review.ID
	}
	return 0
}

// FeedPage is one page of an assembled feed. Pages are 1-based and
// requests beyond the valid range clamp rather than error.
type FeedPage struct {
	Items      []FeedItem `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalItems int        `json:"total_items"`
	TotalPages int        `json:"total_pages"`
	HasNext    bool       `json:"has_next"`
	HasPrev    bool       `json:"has_prev"`
}
