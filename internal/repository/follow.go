package repository

import (
	"context"
	"errors"

	"critiq/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow graph operations
type FollowRepository interface {
	Create(ctx context.Context, edge *models.UserFollow) error
	GetEdge(ctx context.Context, followerID, followedID uint) (*models.UserFollow, error)
	Delete(ctx context.Context, edgeID uint) error
	FollowedIDs(ctx context.Context, followerID uint) ([]uint, error)
	Following(ctx context.Context, followerID uint) ([]models.User, error)
	Followers(ctx context.Context, followedID uint) ([]models.User, error)
	IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, edge *models.UserFollow) error {
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetEdge returns (nil, nil) when the exact edge does not exist.
func (r *followRepository) GetEdge(ctx context.Context, followerID, followedID uint) (*models.UserFollow, error) {
	var edge models.UserFollow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Preload("Followed").
		First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &edge, nil
}

func (r *followRepository) Delete(ctx context.Context, edgeID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.UserFollow{}, edgeID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// FollowedIDs returns the ids of every user the follower follows.
// The leaf query for all visibility filtering.
func (r *followRepository) FollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *followRepository) Following(ctx context.Context, followerID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN user_follows f ON users.id = f.followed_id").
		Where("f.follower_id = ? AND users.deleted_at IS NULL", followerID).
		Order("users.username ASC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) Followers(ctx context.Context, followedID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN user_follows f ON users.id = f.follower_id").
		Where("f.followed_id = ? AND users.deleted_at IS NULL", followedID).
		Order("users.username ASC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
