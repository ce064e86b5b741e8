package domain

import "time"

// EnquiryStatus enumerates processing states for contact enquiries.
type EnquiryStatus string

const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusRead      EnquiryStatus = "read"
	EnquiryStatusResponded EnquiryStatus = "responded"
)

// Enquiry is an anonymous contact-form submission.
type Enquiry struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    EnquiryStatus
	CreatedAt time.Time
}
