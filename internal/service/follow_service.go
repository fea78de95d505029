package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"critiq/internal/models"
	"critiq/internal/observability"
	"critiq/internal/repository"
)

// FollowService mutates and queries the follow graph.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a follow edge from the follower to the user named by
// targetUsername. Validations run in order: the target must exist, must
// not be the follower, and must not already be followed.
func (s *FollowService) Follow(ctx context.Context, followerID uint, targetUsername string) (*models.UserFollow, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, models.NewNotFoundError("User", targetUsername)
	}

	if target.ID == followerID {
		return nil, models.NewSelfFollowError()
	}

	existing, err := s.followRepo.GetEdge(ctx, followerID, target.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewAlreadyFollowingError(target.Username)
	}

	edge := &models.UserFollow{
		FollowerID: followerID,
		FollowedID: target.ID,
	}
	if err := s.followRepo.Create(ctx, edge); err != nil {
		// A concurrent Follow can slip past the GetEdge check and land on
		// the unique (follower, followed) index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewAlreadyFollowingError(target.Username)
		}
		return nil, err
	}
	edge.Followed = *target

	observability.FollowEdgeMutations.WithLabelValues("follow").Inc()
	return edge, nil
}

// Unfollow removes the follower's edge to followedID. The lookup is scoped
// to the follower, so a user can only ever remove their own edges. A
// missing edge is an error, not a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	edge, err := s.followRepo.GetEdge(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if edge == nil {
		return models.NewEdgeNotFoundError()
	}

	if err := s.followRepo.Delete(ctx, edge.ID); err != nil {
		return err
	}

	observability.FollowEdgeMutations.WithLabelValues("unfollow").Inc()
	return nil
}

// Following returns the users the given user follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.Following(ctx, userID)
}

// Followers returns the users following the given user.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.Followers(ctx, userID)
}

// IsFollowing reports whether follower follows followed.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followedID)
}
