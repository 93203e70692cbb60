package service

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

type CertificateService interface {
	Compute(userID int64) (*models.Certificate, error)
}

type certificateService struct {
	users     repository.UserRepository
	checkIns  repository.CheckInRepository
	talks     repository.TalkRepository
	speakers  repository.SpeakerRepository
	eventName string
	logger    *zap.Logger
	now       func() time.Time
}

func NewCertificateService(users repository.UserRepository, checkIns repository.CheckInRepository,
	talks repository.TalkRepository, speakers repository.SpeakerRepository, eventName string,
	logger *zap.Logger) CertificateService {
	return &certificateService{
		users:     users,
		checkIns:  checkIns,
		talks:     talks,
		speakers:  speakers,
		eventName: eventName,
		logger:    logger,
		now:       time.Now,
	}
}

// Compute derives the participation certificate from the attendance ledger.
// Check-ins whose talk was deleted are skipped; a deleted speaker shows as
// "N/A"; a talk whose times fail to parse as HH:MM, or whose end precedes its
// start, contributes zero hours. These are deliberate policies.
func (s *certificateService) Compute(userID int64) (*models.Certificate, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	checkIns, err := s.checkIns.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	if len(checkIns) == 0 {
		return nil, ErrNoAttendance
	}

	attended := make([]models.AttendedTalk, 0, len(checkIns))
	totalHours := 0.0
	for _, checkIn := range checkIns {
		talk, err := s.talks.GetByID(checkIn.TalkID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve talk: %w", err)
		}
		if talk == nil {
			continue
		}

		speakerName := "N/A"
		speaker, err := s.speakers.GetByID(talk.SpeakerID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve speaker: %w", err)
		}
		if speaker != nil {
			speakerName = speaker.Name
		}

		attended = append(attended, models.AttendedTalk{
			Title:     talk.Title,
			Location:  talk.Location,
			StartTime: talk.StartTime,
			EndTime:   talk.EndTime,
			Speaker:   speakerName,
		})
		totalHours += talkHours(talk.StartTime, talk.EndTime)
	}

	totalHours = math.Round(totalHours*10) / 10
	return &models.Certificate{
		User: models.CertificateUser{
			Name:       user.Name,
			Email:      user.Email,
			CPF:        user.CPF,
			Enrollment: user.Enrollment,
		},
		Talks:      attended,
		TotalHours: totalHours,
		IssuedAt:   s.now().Format("02/01/2006 15:04"),
		Message: fmt.Sprintf("This certifies that %s attended %s with a total workload of %.1f hours.",
			user.Name, s.eventName, totalHours),
	}, nil
}

// talkHours subtracts two same-day HH:MM wall-clock values. Anything that
// fails to parse, or a negative span, counts as zero.
func talkHours(startTime, endTime string) float64 {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0
	}
	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
