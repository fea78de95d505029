// Package service contains the business logic layer for the application.
package service

import (
	"context"
	"sort"
	"time"

	"critiq/internal/models"
	"critiq/internal/observability"
	"critiq/internal/repository"
)

// MaxPageSize caps client-requested feed page sizes.
const MaxPageSize = 50

// FeedService assembles the merged ticket/review stream a viewer sees.
// The same assembler serves both the followed-users feed and a user's own
// activity stream; only the author filter differs.
type FeedService struct {
	followRepo      repository.FollowRepository
	ticketRepo      repository.TicketRepository
	reviewRepo      repository.ReviewRepository
	userRepo        repository.UserRepository
	defaultPageSize int
}

// NewFeedService returns a new FeedService with the given default page size.
func NewFeedService(
	followRepo repository.FollowRepository,
	ticketRepo repository.TicketRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	defaultPageSize int,
) *FeedService {
	if defaultPageSize <= 0 {
		defaultPageSize = 5
	}
	return &FeedService{
		followRepo:      followRepo,
		ticketRepo:      ticketRepo,
		reviewRepo:      reviewRepo,
		userRepo:        userRepo,
		defaultPageSize: defaultPageSize,
	}
}

// AssembleFeed returns one page of the viewer's feed: all tickets and
// reviews authored by users the viewer follows, merged and sorted newest
// first. The viewer's own content never appears here.
func (s *FeedService) AssembleFeed(ctx context.Context, viewerID uint, page, pageSize int) (*models.FeedPage, error) {
	defer observability.ObserveFeedAssembly("feed", time.Now())

	if _, err := s.userRepo.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	authorIDs, err := s.followRepo.FollowedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, viewerID, authorIDs, page, pageSize)
}

// AssembleOwnPosts returns one page of the user's own activity stream:
// the same merge as the feed, filtered to the user's own authorship.
func (s *FeedService) AssembleOwnPosts(ctx context.Context, userID uint, page, pageSize int) (*models.FeedPage, error) {
	defer observability.ObserveFeedAssembly("posts", time.Now())

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.assemble(ctx, userID, []uint{userID}, page, pageSize)
}

// assemble merges tickets and reviews by the given authors into one
// chronological stream, annotates tickets with whether the viewer has
// already reviewed them, and paginates.
//
// Sort order is created_at descending; equal timestamps break by id
// descending so repeated calls always return the same order.
func (s *FeedService) assemble(ctx context.Context, viewerID uint, authorIDs []uint, page, pageSize int) (*models.FeedPage, error) {
	tickets, err := s.ticketRepo.ListByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]models.FeedItem, 0, len(tickets)+len(reviews))
	ticketIDs := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, models.FeedItem{
			ContentType: models.FeedContentTicket,
			CreatedAt:   t.CreatedAt,
			Ticket:      t,
		})
		ticketIDs = append(ticketIDs, t.ID)
	}
	for _, rv := range reviews {
		items = append(items, models.FeedItem{
			ContentType: models.FeedContentReview,
			CreatedAt:   rv.CreatedAt,
			Review:      rv,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ItemID() > items[j].ItemID()
	})

	reviewed, err := s.ticketRepo.ReviewedTicketIDs(ctx, viewerID, ticketIDs)
	if err != nil {
		return nil, err
	}
	reviewedSet := make(map[uint]struct{}, len(reviewed))
	for _, id := range reviewed {
		reviewedSet[id] = struct{}{}
	}
	for i := range items {
		if items[i].ContentType != models.FeedContentTicket {
			continue
		}
		if _, ok := reviewedSet[items[i].Ticket.ID]; ok {
			items[i].ViewerHasReviewed = true
		}
	}

	observability.FeedItemsMerged.WithLabelValues(string(models.FeedContentTicket)).Add(float64(len(tickets)))
	observability.FeedItemsMerged.WithLabelValues(string(models.FeedContentReview)).Add(float64(len(reviews)))

	return paginate(items, page, pageSize, s.defaultPageSize), nil
}

// paginate slices items into a 1-based page, clamping out-of-range page
// numbers instead of erroring. An empty stream yields an empty page 1.
func paginate(items []models.FeedItem, page, pageSize, defaultPageSize int) *models.FeedPage {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &models.FeedPage{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
