package server

import (
	"github.com/gofiber/fiber/v2"

	"critiq/internal/models"
	"critiq/internal/service"
)

// CreateTicket handles POST /api/tickets
// @Summary Create a ticket
// @Description Publish a review request
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body object{title=string,description=string,image_url=string} true "Ticket"
// @Success 201 {object} models.Ticket
// @Failure 400 {object} object{error=string}
// @Security BearerAuth
// @Router /tickets [post]
func (s *Server) CreateTicket(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ticket, err := s.ticketService.CreateTicket(c.Context(), userID, service.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// GetTicket handles GET /api/tickets/:id
// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} models.Ticket
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /tickets/{id} [get]
func (s *Server) GetTicket(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ticket, err := s.ticketService.GetTicket(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(ticket)
}

// UpdateTicket handles PUT /api/tickets/:id
// @Summary Update a ticket
// @Description Only the ticket's author can update it
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body object{title=string,description=string,image_url=string} true "Ticket"
// @Success 200 {object} models.Ticket
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /tickets/{id} [put]
func (s *Server) UpdateTicket(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ticket, err := s.ticketService.UpdateTicket(c.Context(), userID, id, service.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(ticket)
}

// DeleteTicket handles DELETE /api/tickets/:id
// @Summary Delete a ticket
// @Description Only the ticket's author can delete it; its reviews go with it
// @Tags tickets
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /tickets/{id} [delete]
func (s *Server) DeleteTicket(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.ticketService.DeleteTicket(c.Context(), userID, id); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Ticket deleted"})
}
