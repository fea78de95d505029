package repository

import (
	"context"
	"errors"

	"critiq/internal/cache"
	"critiq/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	ListByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Review, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*models.Review, error)
	ExistsForTicketAndAuthor(ctx context.Context, ticketID, authorID uint) (bool, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	// The cached ticket row carries reviews_count.
	cache.InvalidateTicket(ctx, review.TicketID)
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Ticket").
		Preload("Ticket.User").
		First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

// ListByAuthors returns every review authored by one of authorIDs, newest
// first with id as the deterministic tiebreak.
func (r *reviewRepository) ListByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Review, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var reviews []*models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Ticket").
		Preload("Ticket.User").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ExistsForTicketAndAuthor(ctx context.Context, ticketID, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("ticket_id = ? AND user_id = ?", ticketID, authorID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete hard-deletes so the (ticket, author) unique index frees up.
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	var ticketIDs []uint
	_ = r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Pluck("ticket_id", &ticketIDs)

	if err := r.db.WithContext(ctx).Delete(&models.Review{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	for _, ticketID := range ticketIDs {
		cache.InvalidateTicket(ctx, ticketID)
	}
	return nil
}
