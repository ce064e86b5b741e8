package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aerobook/internal/api/dto"
	"github.com/spec-kit/aerobook/internal/service"
	apperrors "github.com/spec-kit/aerobook/pkg/util"
)

// EnquiryHandler manages contact-form endpoints.
type EnquiryHandler struct {
	service *service.EnquiryService
}

// NewEnquiryHandler constructs handler.
func NewEnquiryHandler(enquiryService *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: enquiryService}
}

// SubmitEnquiry POST /enquiry.
func (h *EnquiryHandler) SubmitEnquiry(c *fiber.Ctx) error {
	var req dto.CreateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	enquiry, err := h.service.SubmitEnquiry(c.Context(), service.EnquiryCreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Enquiry submitted successfully",
		"enquiry": dto.NewEnquiryResponse(enquiry),
	})
}

// GetEnquiry GET /enquiry/:id.
func (h *EnquiryHandler) GetEnquiry(c *fiber.Ctx) error {
	enquiry, err := h.service.GetEnquiry(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"enquiry": dto.NewEnquiryResponse(enquiry)})
}
