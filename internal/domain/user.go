package domain

import "time"

// User is the domain model for account holders who create bookings and tickets.
type User struct {
	ID                  string
	Email               string
	PasswordHash        string
	Name                string
	Phone               *string
	DateOfBirth         *time.Time
	Address             *string
	FrequentFlyerNumber *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
