package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aerobook/internal/api/http/handlers"
	"github.com/spec-kit/aerobook/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Profile        *handlers.ProfileHandler
	Flights        *handlers.FlightsHandler
	Bookings       *handlers.BookingsHandler
	Support        *handlers.SupportHandler
	Enquiry        *handlers.EnquiryHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes under the /api prefix.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	profile := api.Group("/profile", cfg.AuthMiddleware.Require)
	profile.Get("", cfg.Profile.GetProfile)
	profile.Put("", cfg.Profile.UpdateProfile)
	profile.Put("/password", cfg.Profile.ChangePassword)

	flights := api.Group("/flights")
	flights.Get("/search", cfg.Flights.SearchFlights)
	flights.Get("/airports", cfg.Flights.ListAirports)
	flights.Get("/:id", cfg.Flights.GetFlight)

	bookings := api.Group("/bookings")
	bookings.Get("/reference/:ref", cfg.Bookings.GetBookingByReference)
	bookings.Post("", cfg.AuthMiddleware.Require, cfg.Bookings.CreateBooking)
	bookings.Get("", cfg.AuthMiddleware.Require, cfg.Bookings.ListBookings)
	bookings.Get("/:id", cfg.AuthMiddleware.Require, cfg.Bookings.GetBooking)
	bookings.Put("/:id", cfg.AuthMiddleware.Require, cfg.Bookings.UpdateBooking)
	bookings.Post("/:id/cancel", cfg.AuthMiddleware.Require, cfg.Bookings.CancelBooking)

	support := api.Group("/support")
	support.Get("/faq", cfg.Support.ListFAQ)
	support.Post("/tickets", cfg.AuthMiddleware.Optional, cfg.Support.CreateTicket)
	support.Get("/tickets", cfg.AuthMiddleware.Require, cfg.Support.ListTickets)
	support.Get("/tickets/number/:num", cfg.Support.GetTicketByNumber)
	support.Get("/tickets/:id", cfg.AuthMiddleware.Require, cfg.Support.GetTicket)
	support.Put("/tickets/:id", cfg.AuthMiddleware.Require, cfg.Support.UpdateTicket)

	enquiry := api.Group("/enquiry")
	enquiry.Post("", cfg.Enquiry.SubmitEnquiry)
	enquiry.Get("/:id", cfg.Enquiry.GetEnquiry)
}
