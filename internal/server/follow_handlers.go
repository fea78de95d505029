package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"critiq/internal/models"
)

// GetFollows handles GET /api/follows
// @Summary Get the viewer's follow relationships
// @Description Users the viewer follows and users following the viewer
// @Tags follows
// @Produce json
// @Success 200 {object} object{following=[]models.User,followers=[]models.User}
// @Failure 401 {object} object{error=string}
// @Security BearerAuth
// @Router /follows [get]
func (s *Server) GetFollows(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	following, err := s.followService.Following(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	followers, err := s.followService.Followers(c.Context(), userID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": following,
		"followers": followers,
	})
}

// CreateFollow handles POST /api/follows
// @Summary Follow a user by username
// @Tags follows
// @Accept json
// @Produce json
// @Param request body object{username=string} true "Target username"
// @Success 201 {object} models.UserFollow
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Security BearerAuth
// @Router /follows [post]
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	edge, err := s.followService.Follow(c.Context(), userID, req.Username)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(edge)
}

// DeleteFollow handles DELETE /api/follows/:userId
// @Summary Unfollow a user
// @Tags follows
// @Produce json
// @Param userId path int true "Followed user ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /follows/{userId} [delete]
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	followedID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followService.Unfollow(c.Context(), userID, followedID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Unfollowed"})
}
