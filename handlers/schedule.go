// File: handlers/schedule.go
package handlers

import (
	"net/http"

	"oncall/models"

	"github.com/gin-gonic/gin"
)

// CreateScheduleHandler handles POST /api/schedules.
func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	sched, err := h.ScheduleSvc.CreateSchedule(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sched)
}

// GetSchedulesHandler handles GET /api/schedules.
func (h *ScheduleHandler) GetSchedulesHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	schedules, err := h.ScheduleSvc.GetSchedules(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GetScheduleHandler handles GET /api/schedules/:id.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sched, err := h.ScheduleSvc.GetSchedule(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sched)
}

// UpdateScheduleHandler handles PUT /api/schedules/:id.
func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	sched, err := h.ScheduleSvc.UpdateSchedule(userID, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sched)
}

// FinalizeScheduleHandler handles POST /api/schedules/:id/finalize.
func (h *ScheduleHandler) FinalizeScheduleHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sched, err := h.ScheduleSvc.FinalizeSchedule(userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sched)
}

// DeleteScheduleHandler handles DELETE /api/schedules/:id.
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.ScheduleSvc.DeleteSchedule(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
