package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventbackend/internal/models"
	"eventbackend/internal/service"
)

type AdminHandler interface {
	CreateSpeaker(c *gin.Context)
	ListSpeakers(c *gin.Context)
	DeleteSpeaker(c *gin.Context)
	CreateTalk(c *gin.Context)
	DeleteTalk(c *gin.Context)
	RatingSummary(c *gin.Context)
	IssueCertificate(c *gin.Context)
	CreateAdmin(c *gin.Context)
	ListAdmins(c *gin.Context)
	DeleteAdmin(c *gin.Context)
	ListUsers(c *gin.Context)
	SendNotification(c *gin.Context)
}

type adminHandler struct {
	speakers      service.SpeakerService
	talks         service.TalkService
	ratings       service.RatingService
	certificates  service.CertificateService
	admins        service.AdminService
	notifications service.NotificationService
	log           *logrus.Logger
}

func NewAdminHandler(speakers service.SpeakerService, talks service.TalkService,
	ratings service.RatingService, certificates service.CertificateService,
	admins service.AdminService, notifications service.NotificationService,
	log *logrus.Logger) AdminHandler {
	return &adminHandler{
		speakers:      speakers,
		talks:         talks,
		ratings:       ratings,
		certificates:  certificates,
		admins:        admins,
		notifications: notifications,
		log:           log,
	}
}

type CreateSpeakerRequest struct {
	Name       string `json:"name" binding:"required"`
	Background string `json:"background"`
}

type CreateTalkRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	SpeakerID   int64   `json:"speaker_id" binding:"required"`
}

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SendNotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	UserID  *int64 `json:"user_id"`
}

func (h *adminHandler) CreateSpeaker(c *gin.Context) {
	var req CreateSpeakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	speaker, err := h.speakers.Create(req.Name, req.Background)
	if err != nil {
		h.log.Errorf("Failed to create speaker: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create speaker"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"speaker": speaker})
}

func (h *adminHandler) ListSpeakers(c *gin.Context) {
	speakers, err := h.speakers.List()
	if err != nil {
		h.log.Errorf("Failed to list speakers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve speakers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"speakers": speakers})
}

func (h *adminHandler) DeleteSpeaker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.speakers.Delete(id); err != nil {
		if errors.Is(err, service.ErrSpeakerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to delete speaker %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete speaker"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Speaker removed"})
}

func (h *adminHandler) CreateTalk(c *gin.Context) {
	var req CreateTalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	talk, err := h.talks.Create(&models.Talk{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		SpeakerID:   req.SpeakerID,
	})
	if err != nil {
		if errors.Is(err, service.ErrSpeakerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to create talk: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create talk"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"talk": talk})
}

func (h *adminHandler) DeleteTalk(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.talks.Delete(id); err != nil {
		if errors.Is(err, service.ErrTalkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to delete talk %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete talk"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Talk removed"})
}

func (h *adminHandler) RatingSummary(c *gin.Context) {
	summary, err := h.ratings.SummaryByTalk()
	if err != nil {
		h.log.Errorf("Failed to build rating summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ratings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"talks": summary})
}

// IssueCertificate handles GET /api/admin/certificates/:id, computing the
// certificate for an arbitrary user.
func (h *adminHandler) IssueCertificate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	certificate, err := h.certificates.Compute(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNoAttendance):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Errorf("Failed to compute certificate for user %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute certificate"})
		}
		return
	}
	c.JSON(http.StatusOK, certificate)
}

func (h *adminHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.admins.CreateAdmin(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to create admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin created", "admin": publicUser(admin)})
}

func (h *adminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.admins.ListAdmins()
	if err != nil {
		h.log.Errorf("Failed to list admins: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve admins"})
		return
	}
	result := make([]gin.H, 0, len(admins))
	for _, admin := range admins {
		result = append(result, publicUser(admin))
	}
	c.JSON(http.StatusOK, gin.H{"admins": result})
}

func (h *adminHandler) DeleteAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admins.DeleteAdmin(id); err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to delete admin %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin removed"})
}

func (h *adminHandler) ListUsers(c *gin.Context) {
	users, err := h.admins.ListUsers()
	if err != nil {
		h.log.Errorf("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	result := make([]gin.H, 0, len(users))
	for _, user := range users {
		result = append(result, publicUser(user))
	}
	c.JSON(http.StatusOK, gin.H{"users": result})
}

func (h *adminHandler) SendNotification(c *gin.Context) {
	var req SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.notifications.Send(req.Title, req.Message, req.UserID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to send notification: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent"})
}

// pathID parses the :id route parameter, writing the 400 itself on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return id, true
}
