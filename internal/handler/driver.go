package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
	"swiftride/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverService *service.DriverService
	registry      repository.DriverRegistry
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService, registry repository.DriverRegistry) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		registry:      registry,
	}
}

// RegisterDriverRequest is the HTTP request body for driver registration.
type RegisterDriverRequest struct {
	Name string `json:"name"`
}

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	CurrentRideID string `json:"current_ride_id,omitempty"`
}

func driverResponse(d *domain.Driver) DriverResponse {
	resp := DriverResponse{
		ID:     d.ID,
		Name:   d.Name,
		Status: string(d.Status()),
	}
	if ride := d.CurrentRide(); ride != nil {
		resp.CurrentRideID = ride.ID
	}
	return resp
}

// Register handles POST /v1/drivers/register
func (h *DriverHandler) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	// Duplicate names are permitted, so no existence check here.
	driver := domain.NewDriver(req.Name)
	if err := h.registry.Add(c.Request.Context(), driver); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, driverResponse(driver))
}

// GetAll handles GET /v1/drivers
func (h *DriverHandler) GetAll(c *gin.Context) {
	drivers, err := h.registry.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, driverResponse(d))
	}

	c.JSON(http.StatusOK, response)
}

// Complete handles POST /v1/drivers/:id/complete
func (h *DriverHandler) Complete(c *gin.Context) {
	driver, err := h.driverService.CompleteRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, driverResponse(driver))
}
