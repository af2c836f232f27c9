package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	customers repository.CustomerStore
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customers repository.CustomerStore) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// RegisterCustomerRequest is the HTTP request body for customer registration.
type RegisterCustomerRequest struct {
	Name string `json:"name"`
}

// CustomerResponse is the HTTP response for customer data.
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RideCount int    `json:"ride_count"`
}

// Register handles POST /v1/customers/register
func (h *CustomerHandler) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	customer := domain.NewCustomer(req.Name)
	if err := h.customers.Add(c.Request.Context(), customer); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CustomerResponse{ID: customer.ID, Name: customer.Name})
}

// GetAll handles GET /v1/customers
func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.customers.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		response = append(response, CustomerResponse{
			ID:        cust.ID,
			Name:      cust.Name,
			RideCount: len(cust.Rides()),
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetRides handles GET /v1/customers/:id/rides
func (h *CustomerHandler) GetRides(c *gin.Context) {
	customer, err := h.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	rides := customer.Rides()
	response := make([]RideResponse, 0, len(rides))
	for _, ride := range rides {
		response = append(response, rideResponse(ride))
	}

	c.JSON(http.StatusOK, response)
}
