package dto

import (
	"time"

	"github.com/spec-kit/aerobook/internal/domain"
)

// CreateEnquiryRequest payload.
type CreateEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EnquiryResponse serializes an enquiry.
type EnquiryResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Subject   string               `json:"subject"`
	Message   string               `json:"message"`
	Status    domain.EnquiryStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// NewEnquiryResponse maps a domain enquiry to its wire form.
func NewEnquiryResponse(enquiry *domain.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:        enquiry.ID,
		Name:      enquiry.Name,
		Email:     enquiry.Email,
		Subject:   enquiry.Subject,
		Message:   enquiry.Message,
		Status:    enquiry.Status,
		CreatedAt: enquiry.CreatedAt,
	}
}
