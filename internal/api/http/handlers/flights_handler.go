package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/aerobook/internal/service"
)

// FlightsHandler serves mock flight search endpoints.
type FlightsHandler struct {
	service *service.FlightService
}

// NewFlightsHandler constructs handler.
func NewFlightsHandler(flightService *service.FlightService) *FlightsHandler {
	return &FlightsHandler{service: flightService}
}

// SearchFlights GET /flights/search.
func (h *FlightsHandler) SearchFlights(c *fiber.Ctx) error {
	passengers := 1
	if parsed, err := strconv.Atoi(c.Query("passengers", "1")); err == nil {
		passengers = parsed
	}
	input := service.FlightSearchInput{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		Passengers:  passengers,
		Class:       c.Query("class", "economy"),
	}

	flights, err := h.service.Search(c.Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"flights": flights,
		"count":   len(flights),
		"search_params": fiber.Map{
			"origin":      input.Origin,
			"destination": input.Destination,
			"date":        input.Date,
			"passengers":  input.Passengers,
			"class":       input.Class,
		},
	})
}

// GetFlight GET /flights/:id.
func (h *FlightsHandler) GetFlight(c *fiber.Ctx) error {
	flight := h.service.GetFlight(c.Params("id"))
	return c.JSON(fiber.Map{"flight": flight})
}

// ListAirports GET /flights/airports.
func (h *FlightsHandler) ListAirports(c *fiber.Ctx) error {
	airports := h.service.Airports(c.Query("q"))
	return c.JSON(fiber.Map{
		"airports": airports,
		"count":    len(airports),
	})
}
