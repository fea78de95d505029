package service

import (
	"context"
	"errors"
	"testing"

	"critiq/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByIDCachedFn func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDCached(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDCachedFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByIDCachedFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

// ticketRepoStub is a stub for repository.TicketRepository.
type ticketRepoStub struct {
	createFn            func(context.Context, *models.Ticket) error
	getByIDFn           func(context.Context, uint) (*models.Ticket, error)
	getByIDCachedFn     func(context.Context, uint) (*models.Ticket, error)
	listByAuthorsFn     func(context.Context, []uint) ([]*models.Ticket, error)
	updateFn            func(context.Context, *models.Ticket) error
	deleteFn            func(context.Context, uint) error
	reviewedTicketIDsFn func(context.Context, uint, []uint) ([]uint, error)
}

func (s *ticketRepoStub) Create(ctx context.Context, ticket *models.Ticket) error {
	return s.createFn(ctx, ticket)
}
func (s *ticketRepoStub) GetByID(ctx context.Context, id uint) (*models.Ticket, error) {
	return s.getByIDFn(ctx, id)
}
func (s *ticketRepoStub) GetByIDCached(ctx context.Context, id uint) (*models.Ticket, error) {
	return s.getByIDCachedFn(ctx, id)
}
func (s *ticketRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Ticket, error) {
	return s.listByAuthorsFn(ctx, authorIDs)
}
func (s *ticketRepoStub) Update(ctx context.Context, ticket *models.Ticket) error {
	return s.updateFn(ctx, ticket)
}
func (s *ticketRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *ticketRepoStub) ReviewedTicketIDs(ctx context.Context, viewerID uint, ticketIDs []uint) ([]uint, error) {
	return s.reviewedTicketIDsFn(ctx, viewerID, ticketIDs)
}

func noopTicketRepo() *ticketRepoStub {
	return &ticketRepoStub{
		createFn:            func(_ context.Context, _ *models.Ticket) error { return nil },
		getByIDFn:           func(_ context.Context, id uint) (*models.Ticket, error) { return &models.Ticket{ID: id}, nil },
		getByIDCachedFn:     func(_ context.Context, id uint) (*models.Ticket, error) { return &models.Ticket{ID: id}, nil },
		listByAuthorsFn:     func(_ context.Context, _ []uint) ([]*models.Ticket, error) { return nil, nil },
		updateFn:            func(_ context.Context, _ *models.Ticket) error { return nil },
		deleteFn:            func(_ context.Context, _ uint) error { return nil },
		reviewedTicketIDsFn: func(_ context.Context, _ uint, _ []uint) ([]uint, error) { return nil, nil },
	}
}

// reviewRepoStub is a stub for repository.ReviewRepository.
type reviewRepoStub struct {
	createFn                   func(context.Context, *models.Review) error
	getByIDFn                  func(context.Context, uint) (*models.Review, error)
	listByAuthorsFn            func(context.Context, []uint) ([]*models.Review, error)
	listByTicketFn             func(context.Context, uint) ([]*models.Review, error)
	existsForTicketAndAuthorFn func(context.Context, uint, uint) (bool, error)
	updateFn                   func(context.Context, *models.Review) error
	deleteFn                   func(context.Context, uint) error
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reviewRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Review, error) {
	return s.listByAuthorsFn(ctx, authorIDs)
}
func (s *reviewRepoStub) ListByTicket(ctx context.Context, ticketID uint) ([]*models.Review, error) {
	return s.listByTicketFn(ctx, ticketID)
}
func (s *reviewRepoStub) ExistsForTicketAndAuthor(ctx context.Context, ticketID, authorID uint) (bool, error) {
	return s.existsForTicketAndAuthorFn(ctx, ticketID, authorID)
}
func (s *reviewRepoStub) Update(ctx context.Context, review *models.Review) error {
	return s.updateFn(ctx, review)
}
func (s *reviewRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		createFn:                   func(_ context.Context, _ *models.Review) error { return nil },
		getByIDFn:                  func(_ context.Context, id uint) (*models.Review, error) { return &models.Review{ID: id}, nil },
		listByAuthorsFn:            func(_ context.Context, _ []uint) ([]*models.Review, error) { return nil, nil },
		listByTicketFn:             func(_ context.Context, _ uint) ([]*models.Review, error) { return nil, nil },
		existsForTicketAndAuthorFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		updateFn:                   func(_ context.Context, _ *models.Review) error { return nil },
		deleteFn:                   func(_ context.Context, _ uint) error { return nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn      func(context.Context, *models.UserFollow) error
	getEdgeFn     func(context.Context, uint, uint) (*models.UserFollow, error)
	deleteFn      func(context.Context, uint) error
	followedIDsFn func(context.Context, uint) ([]uint, error)
	followingFn   func(context.Context, uint) ([]models.User, error)
	followersFn   func(context.Context, uint) ([]models.User, error)
	isFollowingFn func(context.Context, uint, uint) (bool, error)
}

func (s *followRepoStub) Create(ctx context.Context, edge *models.UserFollow) error {
	return s.createFn(ctx, edge)
}
func (s *followRepoStub) GetEdge(ctx context.Context, followerID, followedID uint) (*models.UserFollow, error) {
	return s.getEdgeFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Delete(ctx context.Context, edgeID uint) error {
	return s.deleteFn(ctx, edgeID)
}
func (s *followRepoStub) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followedIDsFn(ctx, followerID)
}
func (s *followRepoStub) Following(ctx context.Context, followerID uint) ([]models.User, error) {
	return s.followingFn(ctx, followerID)
}
func (s *followRepoStub) Followers(ctx context.Context, followedID uint) ([]models.User, error) {
	return s.followersFn(ctx, followedID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followedID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:      func(_ context.Context, _ *models.UserFollow) error { return nil },
		getEdgeFn:     func(_ context.Context, _, _ uint) (*models.UserFollow, error) { return nil, nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
		followedIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		followingFn:   func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		followersFn:   func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		isFollowingFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// assertAppErrorCode asserts that err is an AppError with the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
