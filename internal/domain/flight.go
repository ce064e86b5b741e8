package domain

// Airline is a static carrier entry used by the mock flight generator.
type Airline struct {
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	Rating float64 `json:"rating"`
}

// Airport is a static airport entry served by the airports endpoint.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Flight is a mock flight offer returned by search. Offers are generated,
// not persisted.
type Flight struct {
	ID             string   `json:"id"`
	Airline        string   `json:"airline"`
	AirlineCode    string   `json:"airline_code"`
	Rating         float64  `json:"rating"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	DepartureTime  string   `json:"departure_time"`
	ArrivalTime    string   `json:"arrival_time"`
	Date           string   `json:"date"`
	Duration       string   `json:"duration"`
	Price          float64  `json:"price"`
	Class          string   `json:"class,omitempty"`
	Stops          int      `json:"stops"`
	SeatsAvailable int      `json:"seats_available"`
	Aircraft       string   `json:"aircraft"`
	Amenities      []string `json:"amenities,omitempty"`
}
