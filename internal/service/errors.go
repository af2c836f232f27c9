package service

import "errors"

var (
	// ErrNoDriverAvailable is returned when the whole driver pool is occupied.
	ErrNoDriverAvailable = errors.New("no driver available")

	// ErrInvalidCustomer is returned when a booking names no customer.
	ErrInvalidCustomer = errors.New("invalid customer")

	// ErrInvalidDriverID is returned when a driver ID is empty.
	ErrInvalidDriverID = errors.New("invalid driver id")
)
