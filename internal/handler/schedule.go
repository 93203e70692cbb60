package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventbackend/internal/service"
)

type ScheduleHandler interface {
	List(c *gin.Context)
}

type scheduleHandler struct {
	talks service.TalkService
	log   *logrus.Logger
}

func NewScheduleHandler(talks service.TalkService, log *logrus.Logger) ScheduleHandler {
	return &scheduleHandler{talks: talks, log: log}
}

// List handles GET /api/talks, the public schedule.
func (h *scheduleHandler) List(c *gin.Context) {
	entries, err := h.talks.Schedule(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to load schedule: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"talks": entries})
}
