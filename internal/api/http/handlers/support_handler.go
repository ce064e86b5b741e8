package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aerobook/internal/api/dto"
	"github.com/spec-kit/aerobook/internal/auth"
	"github.com/spec-kit/aerobook/internal/domain"
	"github.com/spec-kit/aerobook/internal/service"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

// SupportHandler manages support-ticket endpoints.
type SupportHandler struct {
	service *service.SupportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{service: supportService}
}

// CreateTicket POST /support/tickets. Auth optional: anonymous callers
// supply contact details instead.
func (h *SupportHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.CreateTicket(c.Context(), auth.UserIDFromContext(c), service.TicketCreateInput{
		Subject:          req.Subject,
		Description:      req.Description,
		Priority:         req.Priority,
		BookingReference: req.BookingReference,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Support ticket created successfully",
		"ticket":  dto.NewTicketResponse(ticket),
	})
}

// ListTickets GET /support/tickets.
func (h *SupportHandler) ListTickets(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var status *domain.TicketStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := domain.TicketStatus(statusStr)
		status = &s
	}

	tickets, err := h.service.ListTickets(c.Context(), principal.User.ID, status)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{
		"tickets": items,
		"count":   len(items),
	})
}

// GetTicket GET /support/tickets/:id.
func (h *SupportHandler) GetTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	ticket, err := h.service.GetTicket(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": dto.NewTicketResponse(ticket)})
}

// UpdateTicket PUT /support/tickets/:id.
func (h *SupportHandler) UpdateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.UpdateTicket(c.Context(), principal.User.ID, c.Params("id"), service.TicketUpdateInput{
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Ticket updated successfully",
		"ticket":  dto.NewTicketResponse(ticket),
	})
}

// GetTicketByNumber GET /support/tickets/number/:num. Public lookup.
func (h *SupportHandler) GetTicketByNumber(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicketByNumber(c.Context(), c.Params("num"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": dto.NewTicketResponse(ticket)})
}

// ListFAQ GET /support/faq.
func (h *SupportHandler) ListFAQ(c *fiber.Ctx) error {
	faqs := h.service.ListFAQ(c.Query("category"))
	return c.JSON(fiber.Map{
		"faqs":  faqs,
		"count": len(faqs),
	})
}
