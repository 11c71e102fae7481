// File: handlers/location.go
package handlers

import (
	"net/http"

	"oncall/models"
	"oncall/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves location, schedule, shift, and subscription
// endpoints.
type ScheduleHandler struct {
	ScheduleSvc schedule.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler instance.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{ScheduleSvc: svc}
}

// CreateLocationHandler handles POST /api/locations.
func (h *ScheduleHandler) CreateLocationHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	loc, err := h.ScheduleSvc.CreateLocation(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, loc)
}

// GetLocationsHandler handles GET /api/locations.
func (h *ScheduleHandler) GetLocationsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	locations, err := h.ScheduleSvc.GetLocations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, locations)
}

// UpdateLocationHandler handles PUT /api/locations/:id.
func (h *ScheduleHandler) UpdateLocationHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	loc, err := h.ScheduleSvc.UpdateLocation(userID, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// DeleteLocationHandler handles DELETE /api/locations/:id.
func (h *ScheduleHandler) DeleteLocationHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.ScheduleSvc.DeleteLocation(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}
