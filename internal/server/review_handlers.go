package server

import (
	"github.com/gofiber/fiber/v2"

	"critiq/internal/models"
	"critiq/internal/service"
)

type reviewRequest struct {
	Headline string `json:"headline"`
	Rating   int    `json:"rating"`
	Body     string `json:"body"`
}

func (r reviewRequest) toInput() service.CreateReviewInput {
	return service.CreateReviewInput{
		Headline: r.Headline,
		Rating:   r.Rating,
		Body:     r.Body,
	}
}

// CreateReviewForTicket handles POST /api/tickets/:id/reviews
// @Summary Review a ticket
// @Description Publish a review answering an existing ticket
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body object{headline=string,rating=int,body=string} true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /tickets/{id}/reviews [post]
func (s *Server) CreateReviewForTicket(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	ticketID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.CreateReviewForTicket(c.Context(), userID, ticketID, req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// CreateReviewWithTicket handles POST /api/reviews
// @Summary Create a ticket and review it in one step
// @Description Atomically publish a ticket together with its first review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body object{ticket=object{title=string,description=string,image_url=string},review=object{headline=string,rating=int,body=string}} true "Ticket and review"
// @Success 201 {object} models.Review
// @Failure 400 {object} object{error=string}
// @Security BearerAuth
// @Router /reviews [post]
func (s *Server) CreateReviewWithTicket(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Ticket struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ImageURL    string `json:"image_url"`
		} `json:"ticket"`
		Review reviewRequest `json:"review"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.CreateReviewWithTicket(c.Context(), userID,
		service.CreateTicketInput{
			Title:       req.Ticket.Title,
			Description: req.Ticket.Description,
			ImageURL:    req.Ticket.ImageURL,
		},
		req.Review.toInput(),
	)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetTicketReviews handles GET /api/tickets/:id/reviews
// @Summary List reviews for a ticket
// @Tags reviews
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {array} models.Review
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /tickets/{id}/reviews [get]
func (s *Server) GetTicketReviews(c *fiber.Ctx) error {
	ticketID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	reviews, err := s.reviewService.ListReviewsForTicket(c.Context(), ticketID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(reviews)
}

// GetReview handles GET /api/reviews/:id
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.Review
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /reviews/{id} [get]
func (s *Server) GetReview(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.GetReview(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(review)
}

// UpdateReview handles PUT /api/reviews/:id
// @Summary Update a review
// @Description Only the review's author can update it
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body object{headline=string,rating=int,body=string} true "Review"
// @Success 200 {object} models.Review
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /reviews/{id} [put]
func (s *Server) UpdateReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.UpdateReview(c.Context(), userID, id, req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(review)
}

// DeleteReview handles DELETE /api/reviews/:id
// @Summary Delete a review
// @Description Only the review's author can delete it
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.reviewService.DeleteReview(c.Context(), userID, id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Review deleted"})
}
