// File: handlers/calendar.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// IssueSubscriptionKeyHandler handles POST /api/subscriptions.
func (h *ScheduleHandler) IssueSubscriptionKeyHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	key, err := h.ScheduleSvc.IssueSubscriptionKey(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, key)
}

// GetSubscriptionKeysHandler handles GET /api/subscriptions.
func (h *ScheduleHandler) GetSubscriptionKeysHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	keys, err := h.ScheduleSvc.GetSubscriptionKeys(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, keys)
}

// RevokeSubscriptionKeyHandler handles DELETE /api/subscriptions/:id.
func (h *ScheduleHandler) RevokeSubscriptionKeyHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.ScheduleSvc.RevokeSubscriptionKey(userID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription key revoked"})
}

// CalendarFeedHandler handles GET /calendar/:key. This route is public:
// possession of the key is the credential, so calendar apps can poll it
// without headers. A trailing ".ics" on the key is accepted.
func (h *ScheduleHandler) CalendarFeedHandler(c *gin.Context) {
	key := strings.TrimSuffix(c.Param("key"), ".ics")
	feed, err := h.ScheduleSvc.BuildCalendarFeed(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "calendar not found"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="oncall.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
