package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventbackend/internal/middleware"
	"eventbackend/internal/service"
)

type AccountHandler interface {
	Profile(c *gin.Context)
	Certificate(c *gin.Context)
	ChangeName(c *gin.Context)
	ChangeEmail(c *gin.Context)
	ChangePassword(c *gin.Context)
	DeleteAccount(c *gin.Context)
}

type accountHandler struct {
	accounts     service.AccountService
	certificates service.CertificateService
	log          *logrus.Logger
}

func NewAccountHandler(accounts service.AccountService, certificates service.CertificateService,
	log *logrus.Logger) AccountHandler {
	return &accountHandler{accounts: accounts, certificates: certificates, log: log}
}

type ChangeNameRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

type ChangeEmailRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewEmail        string `json:"new_email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type DeleteAccountRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
}

func (h *accountHandler) Profile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(int64)
	user, err := h.accounts.Profile(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to load profile for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": publicUser(user)})
}

func (h *accountHandler) Certificate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(int64)
	certificate, err := h.certificates.Compute(userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNoAttendance):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Errorf("Failed to compute certificate for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute certificate"})
		}
		return
	}
	c.JSON(http.StatusOK, certificate)
}

func (h *accountHandler) ChangeName(c *gin.Context) {
	var req ChangeNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(int64)
	user, err := h.accounts.ChangeName(userID, req.NewName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Errorf("Failed to change name for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change name"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Name updated", "user": publicUser(user)})
}

func (h *accountHandler) ChangeEmail(c *gin.Context) {
	var req ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(int64)
	user, err := h.accounts.ChangeEmail(userID, req.CurrentPassword, req.NewEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.log.Errorf("Failed to change email for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change email"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email updated", "user": publicUser(user)})
}

func (h *accountHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(int64)
	err := h.accounts.ChangePassword(userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Errorf("Failed to change password for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *accountHandler) DeleteAccount(c *gin.Context) {
	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(int64)
	err := h.accounts.DeleteAccount(userID, req.CurrentPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Errorf("Failed to delete account for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
