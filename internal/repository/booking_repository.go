package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/aerobook/internal/domain"
)

// BookingReferenceConstraint names the unique index on booking references.
const BookingReferenceConstraint = "bookings_booking_reference_key"

// BookingRepository encapsulates booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	GetByIDForUser(ctx context.Context, id, userID string) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	ListByUser(ctx context.Context, userID string, status *domain.BookingStatus) ([]domain.Booking, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a Postgres-backed implementation.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, user_id, booking_reference, flight_id, airline, origin, destination,
           departure_time, arrival_time, departure_date, duration, passengers, class_type,
           price, total_price, status, passenger_name, passenger_email, passenger_phone,
           created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (user_id, booking_reference, flight_id, airline, origin, destination,
            departure_time, arrival_time, departure_date, duration, passengers, class_type,
            price, total_price, status, passenger_name, passenger_email, passenger_phone)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.UserID,
		booking.BookingReference,
		booking.FlightID,
		booking.Airline,
		booking.Origin,
		booking.Destination,
		booking.DepartureTime,
		booking.ArrivalTime,
		booking.DepartureDate,
		booking.Duration,
		booking.Passengers,
		booking.ClassType,
		booking.Price,
		booking.TotalPrice,
		booking.Status,
		booking.PassengerName,
		booking.PassengerEmail,
		booking.PassengerPhone,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

// Update persists the mutable subset of a booking: passenger contact fields
// and status. Flight attributes and the reference are immutable.
func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	const query = `
        UPDATE bookings SET passenger_name=$1, passenger_email=$2, passenger_phone=$3,
            status=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.PassengerName,
		booking.PassengerEmail,
		booking.PassengerPhone,
		booking.Status,
		booking.ID,
	).Scan(&booking.UpdatedAt)
}

// GetByIDForUser is the authorized lookup: a booking owned by a different
// user is indistinguishable from a missing one.
func (r *bookingRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1 AND user_id=$2`
	return r.fetchSingle(ctx, query, id, userID)
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference=$1`
	return r.fetchSingle(ctx, query, reference)
}

func (r *bookingRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_reference=$1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, reference).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID string, status *domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id=$1`
	args := []any{userID}
	if status != nil {
		args = append(args, *status)
		query += ` AND status=$2`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Booking, error) {
	var booking domain.Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, args...), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func scanBooking(row pgx.Row, booking *domain.Booking) error {
	return row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BookingReference,
		&booking.FlightID,
		&booking.Airline,
		&booking.Origin,
		&booking.Destination,
		&booking.DepartureTime,
		&booking.ArrivalTime,
		&booking.DepartureDate,
		&booking.Duration,
		&booking.Passengers,
		&booking.ClassType,
		&booking.Price,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PassengerName,
		&booking.PassengerEmail,
		&booking.PassengerPhone,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}
