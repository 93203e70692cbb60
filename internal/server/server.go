package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"eventbackend/internal/config"
	"eventbackend/internal/handler"
	"eventbackend/internal/middleware"
	"eventbackend/internal/repository"
	"eventbackend/internal/service"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    config.Config
	cache  *redis.Client
	logger *zap.Logger
	log    *logrus.Logger
}

func NewServer(db *sqlx.DB, cfg config.Config, logger *zap.Logger, log *logrus.Logger, cache *redis.Client) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		cache:  cache,
		logger: logger,
		log:    log,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Repositories
	userRepo := repository.NewUserRepository(s.db, s.logger)
	speakerRepo := repository.NewSpeakerRepository(s.db, s.logger)
	talkRepo := repository.NewTalkRepository(s.db, s.logger)
	checkInRepo := repository.NewCheckInRepository(s.db, s.logger)
	ratingRepo := repository.NewRatingRepository(s.db, s.logger)
	notificationRepo := repository.NewNotificationRepository(s.db, s.logger)

	// Services
	tokens := service.NewTokenService([]byte(s.cfg.JWTSecret), s.cfg.TokenLifetime)
	authService := service.NewAuthService(userRepo, s.logger)
	accountService := service.NewAccountService(userRepo, checkInRepo, ratingRepo, notificationRepo, s.logger)
	attendanceService := service.NewAttendanceService(checkInRepo, talkRepo, s.logger)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, s.logger)
	ratingService := service.NewRatingService(ratingRepo, checkInRepo, talkRepo, speakerRepo, userRepo, s.logger)
	certificateService := service.NewCertificateService(userRepo, checkInRepo, talkRepo, speakerRepo, s.cfg.EventName, s.logger)
	speakerService := service.NewSpeakerService(speakerRepo, s.logger)
	talkService := service.NewTalkService(talkRepo, speakerRepo, notificationService, s.cache, s.cfg.ScheduleTTL, s.logger)
	adminService := service.NewAdminService(userRepo, s.logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, tokens, s.log)
	scheduleHandler := handler.NewScheduleHandler(talkService, s.log)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, ratingService, s.log)
	accountHandler := handler.NewAccountHandler(accountService, certificateService, s.log)
	notificationHandler := handler.NewNotificationHandler(notificationService, s.log)
	adminHandler := handler.NewAdminHandler(speakerService, talkService, ratingService,
		certificateService, adminService, notificationService, s.log)

	s.router.Use(middleware.RequestID())

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	s.router.GET("/api/talks", scheduleHandler.List)

	// Authenticated routes
	authRequired := s.router.Group("/api")
	authRequired.Use(middleware.RequireAuth(tokens, s.logger))
	{
		authRequired.POST("/checkins", attendanceHandler.CheckIn)
		authRequired.GET("/checkins", attendanceHandler.ListCheckIns)
		authRequired.POST("/ratings", attendanceHandler.Rate)
		authRequired.GET("/ratings", attendanceHandler.ListRatings)
		authRequired.GET("/notifications", notificationHandler.List)
		authRequired.PUT("/notifications/:id/read", notificationHandler.MarkRead)
		authRequired.GET("/profile", accountHandler.Profile)
		authRequired.GET("/certificate", accountHandler.Certificate)
		authRequired.PUT("/account/name", accountHandler.ChangeName)
		authRequired.PUT("/account/email", accountHandler.ChangeEmail)
		authRequired.PUT("/account/password", accountHandler.ChangePassword)
		authRequired.DELETE("/account", accountHandler.DeleteAccount)
	}

	// Admin-only routes
	adminRequired := s.router.Group("/api/admin")
	adminRequired.Use(middleware.RequireAuth(tokens, s.logger), middleware.RequireAdmin())
	{
		adminRequired.POST("/speakers", adminHandler.CreateSpeaker)
		adminRequired.GET("/speakers", adminHandler.ListSpeakers)
		adminRequired.DELETE("/speakers/:id", adminHandler.DeleteSpeaker)
		adminRequired.POST("/talks", adminHandler.CreateTalk)
		adminRequired.DELETE("/talks/:id", adminHandler.DeleteTalk)
		adminRequired.GET("/ratings/summary", adminHandler.RatingSummary)
		adminRequired.GET("/certificates/:id", adminHandler.IssueCertificate)
		adminRequired.POST("/admins", adminHandler.CreateAdmin)
		adminRequired.GET("/admins", adminHandler.ListAdmins)
		adminRequired.DELETE("/admins/:id", adminHandler.DeleteAdmin)
		adminRequired.GET("/users", adminHandler.ListUsers)
		adminRequired.POST("/notifications", adminHandler.SendNotification)
	}
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
