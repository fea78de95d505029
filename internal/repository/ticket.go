package repository

import (
	"context"
	"errors"

	"critiq/internal/cache"
	"critiq/internal/models"

	"gorm.io/gorm"
)

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, id uint) (*models.Ticket, error)
	GetByIDCached(ctx context.Context, id uint) (*models.Ticket, error)
	ListByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Ticket, error)
	Update(ctx context.Context, ticket *models.Ticket) error
	Delete(ctx context.Context, id uint) error
	ReviewedTicketIDs(ctx context.Context, viewerID uint, ticketIDs []uint) ([]uint, error)
}

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// applyTicketDetails adds the reviews_count subquery so listings carry it
// without a second round trip.
func (r *ticketRepository) applyTicketDetails(db *gorm.DB) *gorm.DB {
	return db.Select("tickets.*, " +
		"(SELECT COUNT(*) FROM reviews WHERE reviews.ticket_id = tickets.id) as reviews_count")
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	if err := r.db.WithContext(ctx).Create(ticket).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.applyTicketDetails(r.db.WithContext(ctx)).
		Preload("User").
		First(&ticket, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Ticket", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ticket, nil
}

// GetByIDCached reads the ticket detail through the Redis cache. The cached
// row bakes in reviews_count, so review mutations must call
// cache.InvalidateTicket as well.
func (r *ticketRepository) GetByIDCached(ctx context.Context, id uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := cache.Aside(ctx, cache.TicketKey(id), &ticket, cache.TicketTTL, func() error {
		return r.applyTicketDetails(r.db.WithContext(ctx)).
			Preload("User").
			First(&ticket, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Ticket", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ticket, nil
}

// ListByAuthors returns every ticket authored by one of authorIDs, newest
// first with id as the deterministic tiebreak. An empty author set yields
// an empty result without touching the database.
func (r *ticketRepository) ListByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Ticket, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var tickets []*models.Ticket
	err := r.applyTicketDetails(r.db.WithContext(ctx)).
		Preload("User").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tickets, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	if err := r.db.WithContext(ctx).Save(ticket).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTicket(ctx, ticket.ID)
	return nil
}

// Delete removes the ticket and cascades to its reviews in one transaction.
func (r *ticketRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Ticket{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTicket(ctx, id)
	return nil
}

// ReviewedTicketIDs returns the subset of ticketIDs the viewer has already
// reviewed. Used to batch the viewer_has_reviewed annotation for a whole
// feed page in one query.
func (r *ticketRepository) ReviewedTicketIDs(ctx context.Context, viewerID uint, ticketIDs []uint) ([]uint, error) {
	if len(ticketIDs) == 0 {
		return nil, nil
	}
	var reviewed []uint
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND ticket_id IN ?", viewerID, ticketIDs).
		Pluck("ticket_id", &reviewed).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviewed, nil
}
