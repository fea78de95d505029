package server

import (
	"github.com/gofiber/fiber/v2"

	"critiq/internal/models"
)

// GetFeed handles GET /api/feed
// @Summary Get the viewer's feed
// @Description Tickets and reviews from followed users, newest first
// @Tags feed
// @Produce json
// @Param page query int false "1-based page number"
// @Param page_size query int false "Items per page"
// @Success 200 {object} models.FeedPage
// @Failure 401 {object} object{error=string}
// @Security BearerAuth
// @Router /feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page, pageSize := parsePage(c)

	feed, err := s.feedService.AssembleFeed(c.Context(), userID, page, pageSize)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(feed)
}

// GetMyPosts handles GET /api/posts
// @Summary Get the viewer's own tickets and reviews
// @Description The viewer's own content, newest first, in feed shape
// @Tags feed
// @Produce json
// @Param page query int false "1-based page number"
// @Param page_size query int false "Items per page"
// @Success 200 {object} models.FeedPage
// @Failure 401 {object} object{error=string}
// @Security BearerAuth
// @Router /posts [get]
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page, pageSize := parsePage(c)

	feed, err := s.feedService.AssembleOwnPosts(c.Context(), userID, page, pageSize)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(feed)
}
