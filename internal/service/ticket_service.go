package service

import (
	"context"
	"strings"

	"critiq/internal/models"
	"critiq/internal/repository"
)

// CreateTicketInput carries the fields for creating or updating a ticket.
type CreateTicketInput struct {
	Title       string
	Description string
	ImageURL    string
}

// validate checks field constraints before anything is persisted.
func (in *CreateTicketInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(in.Title) > models.MaxTitleLength {
		return models.NewValidationError("Title is too long")
	}
	if in.Description == "" {
		return models.NewValidationError("Description is required")
	}
	return nil
}

// TicketService provides ticket business logic. Every mutation checks
// authorship directly: only the ticket's author may update or delete it.
type TicketService struct {
	ticketRepo repository.TicketRepository
}

// NewTicketService returns a new TicketService.
func NewTicketService(ticketRepo repository.TicketRepository) *TicketService {
	return &TicketService{ticketRepo: ticketRepo}
}

// CreateTicket validates the input and persists a new ticket authored by userID.
func (s *TicketService) CreateTicket(ctx context.Context, userID uint, in CreateTicketInput) (*models.Ticket, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		UserID:      userID,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return s.ticketRepo.GetByID(ctx, ticket.ID)
}

// GetTicket returns a ticket by id, reading through the cache. Mutations
// keep using the uncached lookup so authorship checks never see stale rows.
func (s *TicketService) GetTicket(ctx context.Context, id uint) (*models.Ticket, error) {
	return s.ticketRepo.GetByIDCached(ctx, id)
}

// UpdateTicket applies the input to the ticket if actorID is its author.
func (s *TicketService) UpdateTicket(ctx context.Context, actorID, ticketID uint, in CreateTicketInput) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != actorID {
		return nil, models.NewForbiddenError("You can only update your own tickets")
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	ticket.Title = in.Title
	ticket.Description = in.Description
	ticket.ImageURL = in.ImageURL

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// DeleteTicket removes the ticket and its reviews if actorID is its author.
func (s *TicketService) DeleteTicket(ctx context.Context, actorID, ticketID uint) error {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.UserID != actorID {
		return models.NewForbiddenError("You can only delete your own tickets")
	}

	return s.ticketRepo.Delete(ctx, ticketID)
}
