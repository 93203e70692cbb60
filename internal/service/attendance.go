package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

type AttendanceService interface {
	CheckIn(userID, talkID int64) (*models.CheckIn, error)
	ListForUser(userID int64) ([]models.CheckInSummary, error)
}

type attendanceService struct {
	checkIns repository.CheckInRepository
	talks    repository.TalkRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewAttendanceService(checkIns repository.CheckInRepository, talks repository.TalkRepository,
	logger *zap.Logger) AttendanceService {
	return &attendanceService{checkIns: checkIns, talks: talks, logger: logger, now: time.Now}
}

// CheckIn records attendance stamped with the current epoch seconds. At most
// one record per (user, talk); the unique index backs up the pre-check.
func (s *attendanceService) CheckIn(userID, talkID int64) (*models.CheckIn, error) {
	talk, err := s.talks.GetByID(talkID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve talk: %w", err)
	}
	if talk == nil {
		return nil, ErrTalkNotFound
	}

	existing, err := s.checkIns.GetByUserAndTalk(userID, talkID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing check-in: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyCheckedIn
	}

	checkIn := &models.CheckIn{
		UserID:      userID,
		TalkID:      talkID,
		CheckedInAt: s.now().Unix(),
	}
	if err := s.checkIns.Create(checkIn); err != nil {
		s.logger.Error("Failed to create check-in", zap.Int64("user_id", userID),
			zap.Int64("talk_id", talkID), zap.Error(err))
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}

	s.logger.Info("Check-in recorded", zap.Int64("user_id", userID), zap.Int64("talk_id", talkID))
	return checkIn, nil
}

func (s *attendanceService) ListForUser(userID int64) ([]models.CheckInSummary, error) {
	checkIns, err := s.checkIns.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	summaries := make([]models.CheckInSummary, 0, len(checkIns))
	for _, checkIn := range checkIns {
		title := "N/A"
		talk, err := s.talks.GetByID(checkIn.TalkID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve talk: %w", err)
		}
		if talk != nil {
			title = talk.Title
		}
		summaries = append(summaries, models.CheckInSummary{
			ID:          checkIn.ID,
			TalkID:      checkIn.TalkID,
			TalkTitle:   title,
			CheckedInAt: checkIn.CheckedInAt,
		})
	}
	return summaries, nil
}
