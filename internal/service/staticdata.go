package service

import "github.com/spec-kit/aerobook/internal/domain"

// Static reference tables injected at startup. Read-only after construction.

// DefaultAirlines is the carrier table used by the mock flight generator.
var DefaultAirlines = []domain.Airline{
	{Name: "SkyWings", Code: "SW", Rating: 4.5},
	{Name: "AeroElite", Code: "AE", Rating: 4.7},
	{Name: "CloudNine", Code: "CN", Rating: 4.3},
	{Name: "JetStream", Code: "JS", Rating: 4.6},
	{Name: "FlyHigh", Code: "FH", Rating: 4.4},
	{Name: "Pacific Air", Code: "PA", Rating: 4.8},
	{Name: "Continental Express", Code: "CE", Rating: 4.2},
}

// DefaultAirports is the airport table served by the airports endpoint.
var DefaultAirports = []domain.Airport{
	{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA"},
	{Code: "LHR", Name: "London Heathrow", City: "London", Country: "UK"},
	{Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "Japan"},
	{Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE"},
	{Code: "SIN", Name: "Singapore Changi", City: "Singapore", Country: "Singapore"},
	{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France"},
	{Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA"},
	{Code: "SYD", Name: "Sydney Airport", City: "Sydney", Country: "Australia"},
	{Code: "HKG", Name: "Hong Kong International", City: "Hong Kong", Country: "China"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
}

// DefaultFAQs is the help-center content served by the FAQ endpoint.
var DefaultFAQs = []domain.FAQItem{
	{
		ID:       1,
		Question: "How do I cancel my booking?",
		Answer:   "You can cancel your booking from the \"My Bookings\" page. Click on the \"Cancel Booking\" button next to your reservation. Cancellation fees may apply based on the airline's policy.",
		Category: "bookings",
	},
	{
		ID:       2,
		Question: "What payment methods do you accept?",
		Answer:   "We accept all major credit cards (Visa, MasterCard, American Express), debit cards, and PayPal. All transactions are secured with 256-bit encryption.",
		Category: "payments",
	},
	{
		ID:       3,
		Question: "Can I change my flight date?",
		Answer:   "Yes, flight date changes are subject to availability and airline policies. Additional charges may apply. Contact our support team for assistance.",
		Category: "bookings",
	},
	{
		ID:       4,
		Question: "How early should I arrive at the airport?",
		Answer:   "We recommend arriving at least 2 hours before domestic flights and 3 hours before international flights to allow time for check-in and security procedures.",
		Category: "travel",
	},
	{
		ID:       5,
		Question: "What is your refund policy?",
		Answer:   "Refund policies vary by airline and ticket type. Fully refundable tickets can be cancelled with a full refund, while non-refundable tickets may incur cancellation fees.",
		Category: "refunds",
	},
}
