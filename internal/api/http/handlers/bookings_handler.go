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

// BookingsHandler manages booking endpoints.
type BookingsHandler struct {
	service *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{service: bookingService}
}

// CreateBooking POST /bookings.
func (h *BookingsHandler) CreateBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.BookingCreateInput{
		FlightID:       req.FlightID,
		Airline:        req.Airline,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		DepartureDate:  req.DepartureDate,
		Duration:       req.Duration,
		Passengers:     req.Passengers,
		ClassType:      req.ClassType,
		Price:          req.Price,
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		PassengerPhone: req.PassengerPhone,
	}
	booking, err := h.service.CreateBooking(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": dto.NewBookingResponse(booking),
	})
}

// ListBookings GET /bookings.
func (h *BookingsHandler) ListBookings(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var status *domain.BookingStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := domain.BookingStatus(statusStr)
		status = &s
	}

	bookings, err := h.service.ListBookings(c.Context(), principal.User.ID, status)
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, dto.NewBookingResponse(&bookings[i]))
	}
	return c.JSON(fiber.Map{
		"bookings": items,
		"count":    len(items),
	})
}

// GetBooking GET /bookings/:id.
func (h *BookingsHandler) GetBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	booking, err := h.service.GetBooking(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"booking": dto.NewBookingResponse(booking)})
}

// UpdateBooking PUT /bookings/:id.
func (h *BookingsHandler) UpdateBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.service.UpdateBooking(c.Context(), principal.User.ID, c.Params("id"), service.BookingUpdateInput{
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		PassengerPhone: req.PassengerPhone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Booking updated successfully",
		"booking": dto.NewBookingResponse(booking),
	})
}

// CancelBooking POST /bookings/:id/cancel.
func (h *BookingsHandler) CancelBooking(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}
	booking, err := h.service.CancelBooking(c.Context(), principal.User.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Booking cancelled successfully",
		"booking": dto.NewBookingResponse(booking),
	})
}

// GetBookingByReference GET /bookings/reference/:ref. Public guest lookup.
func (h *BookingsHandler) GetBookingByReference(c *fiber.Ctx) error {
	booking, err := h.service.GetBookingByReference(c.Context(), c.Params("ref"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"booking": dto.NewBookingResponse(booking)})
}
