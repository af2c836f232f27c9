package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
	"swiftride/internal/service"
)

// RideHandler handles HTTP requests for booking rides.
type RideHandler struct {
	booking   *service.BookingService
	customers repository.CustomerStore
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(booking *service.BookingService, customers repository.CustomerStore) *RideHandler {
	return &RideHandler{
		booking:   booking,
		customers: customers,
	}
}

// BookRideRequest is the HTTP request body for booking a ride.
type BookRideRequest struct {
	CustomerID    string  `json:"customer_id"`
	Pickup        string  `json:"pickup"`
	Dropoff       string  `json:"dropoff"`
	DistanceMiles float64 `json:"distance_miles"`
	Category      string  `json:"category"`
}

// RideResponse is the HTTP response for ride data.
type RideResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	Pickup        string  `json:"pickup"`
	Dropoff       string  `json:"dropoff"`
	DistanceMiles float64 `json:"distance_miles"`
	Category      string  `json:"category"`
	Fare          float64 `json:"fare"`
	Confirmed     bool    `json:"confirmed"`
	DriverID      string  `json:"driver_id,omitempty"`
	DriverName    string  `json:"driver_name,omitempty"`
}

func rideResponse(r *domain.Ride) RideResponse {
	resp := RideResponse{
		ID:            r.ID,
		CustomerID:    r.Customer.ID,
		Pickup:        r.Pickup,
		Dropoff:       r.Dropoff,
		DistanceMiles: r.DistanceMiles,
		Category:      r.Policy.Name(),
		Fare:          r.Fare,
		Confirmed:     r.Confirmed(),
	}
	if driver := r.Driver(); driver != nil {
		resp.DriverID = driver.ID
		resp.DriverName = driver.Name
	}
	return resp
}

// Book handles POST /v1/rides
func (h *RideHandler) Book(c *gin.Context) {
	var req BookRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), req.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}

	ride, err := h.booking.Book(c.Request.Context(), service.BookRequest{
		Customer:      customer,
		Pickup:        req.Pickup,
		Dropoff:       req.Dropoff,
		DistanceMiles: req.DistanceMiles,
		Category:      req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rideResponse(ride))
}
