package service

import (
	"context"
	"errors"
	"strings"

	"critiq/internal/models"
	"critiq/internal/repository"

	"gorm.io/gorm"
)

// CreateReviewInput carries the fields for creating or updating a review.
type CreateReviewInput struct {
	Headline string
	Rating   int
	Body     string
}

func (in *CreateReviewInput) validate() error {
	in.Headline = strings.TrimSpace(in.Headline)
	in.Body = strings.TrimSpace(in.Body)

	if in.Headline == "" {
		return models.NewValidationError("Headline is required")
	}
	if len(in.Headline) > models.MaxTitleLength {
		return models.NewValidationError("Headline is too long")
	}
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		return models.NewValidationError("Rating must be between 0 and 5")
	}
	if in.Body == "" {
		return models.NewValidationError("Body is required")
	}
	return nil
}

// ReviewService provides review business logic, including the atomic
// ticket+review co-creation flow. It holds the gorm handle directly for
// the multi-entity transaction.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	ticketRepo repository.TicketRepository
	db         *gorm.DB
}

// NewReviewService returns a new ReviewService.
func NewReviewService(reviewRepo repository.ReviewRepository, ticketRepo repository.TicketRepository, db *gorm.DB) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		db:         db,
	}
}

// CreateReviewForTicket answers an existing ticket with a review by userID.
// A user can review a given ticket only once.
func (s *ReviewService) CreateReviewForTicket(ctx context.Context, userID, ticketID uint, in CreateReviewInput) (*models.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.ticketRepo.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsForTicketAndAuthor(ctx, ticketID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewValidationError("You have already reviewed this ticket")
	}

	review := &models.Review{
		TicketID: ticketID,
		Headline: in.Headline,
		Rating:   in.Rating,
		Body:     in.Body,
		UserID:   userID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		// A concurrent submission can slip past the existence check and
		// land on the unique (ticket, author) index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("You have already reviewed this ticket")
		}
		return nil, err
	}

	return s.reviewRepo.GetByID(ctx, review.ID)
}

// CreateReviewWithTicket creates a ticket and its first review in one
// transaction: either both are persisted or neither is. This closes the
// orphan-ticket gap of creating them in two steps.
func (s *ReviewService) CreateReviewWithTicket(ctx context.Context, userID uint, ticketIn CreateTicketInput, reviewIn CreateReviewInput) (*models.Review, error) {
	if err := ticketIn.validate(); err != nil {
		return nil, err
	}
	if err := reviewIn.validate(); err != nil {
		return nil, err
	}

	var reviewID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ticket := &models.Ticket{
			Title:       ticketIn.Title,
			Description: ticketIn.Description,
			ImageURL:    ticketIn.ImageURL,
			UserID:      userID,
		}
		if err := tx.Create(ticket).Error; err != nil {
			return err
		}

		review := &models.Review{
			TicketID: ticket.ID,
			Headline: reviewIn.Headline,
			Rating:   reviewIn.Rating,
			Body:     reviewIn.Body,
			UserID:   userID,
		}
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		reviewID = review.ID
		return nil
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.reviewRepo.GetByID(ctx, reviewID)
}

// GetReview returns a review by id.
func (s *ReviewService) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, id)
}

// ListReviewsForTicket returns all reviews answering the ticket.
func (s *ReviewService) ListReviewsForTicket(ctx context.Context, ticketID uint) ([]*models.Review, error) {
	if _, err := s.ticketRepo.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByTicket(ctx, ticketID)
}

// UpdateReview applies the input to the review if actorID is its author.
func (s *ReviewService) UpdateReview(ctx context.Context, actorID, reviewID uint, in CreateReviewInput) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != actorID {
		return nil, models.NewForbiddenError("You can only update your own reviews")
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	review.Headline = in.Headline
	review.Rating = in.Rating
	review.Body = in.Body

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes the review if actorID is its author.
func (s *ReviewService) DeleteReview(ctx context.Context, actorID, reviewID uint) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != actorID {
		return models.NewForbiddenError("You can only delete your own reviews")
	}

	return s.reviewRepo.Delete(ctx, reviewID)
}
