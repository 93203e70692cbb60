package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventbackend/internal/middleware"
	"eventbackend/internal/service"
)

type AttendanceHandler interface {
	CheckIn(c *gin.Context)
	ListCheckIns(c *gin.Context)
	Rate(c *gin.Context)
	ListRatings(c *gin.Context)
}

type attendanceHandler struct {
	attendance service.AttendanceService
	ratings    service.RatingService
	log        *logrus.Logger
}

func NewAttendanceHandler(attendance service.AttendanceService, ratings service.RatingService,
	log *logrus.Logger) AttendanceHandler {
	return &attendanceHandler{attendance: attendance, ratings: ratings, log: log}
}

type CheckInRequest struct {
	TalkID int64 `json:"talk_id" binding:"required"`
}

// Score is a pointer so an explicit 0 survives binding and reaches the
// service's range check instead of tripping the required validator.
type RateRequest struct {
	TalkID  int64   `json:"talk_id" binding:"required"`
	Score   *int    `json:"score" binding:"required"`
	Comment *string `json:"comment"`
}

func (h *attendanceHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(int64)
	checkIn, err := h.attendance.CheckIn(userID, req.TalkID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTalkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.log.Errorf("Failed to check in user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record check-in"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Check-in recorded", "check_in": checkIn})
}

func (h *attendanceHandler) ListCheckIns(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(int64)
	checkIns, err := h.attendance.ListForUser(userID)
	if err != nil {
		h.log.Errorf("Failed to list check-ins for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve check-ins"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"check_ins": checkIns})
}

func (h *attendanceHandler) Rate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(int64)
	rating, err := h.ratings.Rate(userID, req.TalkID, *req.Score, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTalkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNoCheckInForRating), errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyRated):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.log.Errorf("Failed to rate talk for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record rating"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Rating recorded", "rating": rating})
}

func (h *attendanceHandler) ListRatings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(int64)
	ratings, err := h.ratings.ListForUser(userID)
	if err != nil {
		h.log.Errorf("Failed to list ratings for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ratings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
