// File: handlers/shift.go
package handlers

import (
	"net/http"

	"oncall/models"

	"github.com/gin-gonic/gin"
)

// CreateShiftHandler handles POST /api/schedules/:id/shifts.
func (h *ScheduleHandler) CreateShiftHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req models.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	shift, err := h.ScheduleSvc.CreateShift(userID, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// GetShiftsHandler handles GET /api/schedules/:id/shifts.
func (h *ScheduleHandler) GetShiftsHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	shifts, err := h.ScheduleSvc.GetShifts(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// UpdateShiftHandler handles PUT /api/shifts/:id.
func (h *ScheduleHandler) UpdateShiftHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req models.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	shift, err := h.ScheduleSvc.UpdateShift(userID, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, shift)
}

// DeleteShiftHandler handles DELETE /api/shifts/:id.
func (h *ScheduleHandler) DeleteShiftHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.ScheduleSvc.DeleteShift(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}
