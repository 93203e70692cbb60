package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

const scheduleCacheKey = "schedule:v1"

type TalkService interface {
	Create(talk *models.Talk) (*models.Talk, error)
	Delete(id int64) error
	Schedule(ctx context.Context) ([]models.ScheduleEntry, error)
}

type talkService struct {
	talks         repository.TalkRepository
	speakers      repository.SpeakerRepository
	notifications NotificationService
	cache         *redis.Client
	cacheTTL      time.Duration
	logger        *zap.Logger
}

// NewTalkService wires the talk CRUD together with the public schedule view.
// cache may be nil; the schedule is then always read from the database.
func NewTalkService(talks repository.TalkRepository, speakers repository.SpeakerRepository,
	notifications NotificationService, cache *redis.Client, cacheTTL time.Duration,
	logger *zap.Logger) TalkService {
	return &talkService{
		talks:         talks,
		speakers:      speakers,
		notifications: notifications,
		cache:         cache,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// Create stores the talk and fans out a notification to every non-admin user.
func (s *talkService) Create(talk *models.Talk) (*models.Talk, error) {
	speaker, err := s.speakers.GetByID(talk.SpeakerID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve speaker: %w", err)
	}
	if speaker == nil {
		return nil, ErrSpeakerNotFound
	}

	if err := s.talks.Create(talk); err != nil {
		s.logger.Error("Failed to create talk", zap.Error(err))
		return nil, fmt.Errorf("failed to create talk: %w", err)
	}

	message := fmt.Sprintf("%q on %s at %s - %s", talk.Title, talk.Date, talk.StartTime, talk.Location)
	if err := s.notifications.Send("New talk scheduled!", message, nil); err != nil {
		// The talk exists either way; the fan-out is best effort.
		s.logger.Warn("Failed to notify users about new talk", zap.Int64("talk_id", talk.ID), zap.Error(err))
	}

	s.invalidateSchedule()
	return talk, nil
}

func (s *talkService) Delete(id int64) error {
	deleted, err := s.talks.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete talk: %w", err)
	}
	if !deleted {
		return ErrTalkNotFound
	}
	s.invalidateSchedule()
	return nil
}

// Schedule returns the public talk listing with speaker names resolved,
// served from the cache when one is configured.
func (s *talkService) Schedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, scheduleCacheKey).Result()
		if err == nil {
			var entries []models.ScheduleEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("Schedule cache read failed", zap.Error(err))
		}
	}

	talks, err := s.talks.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list talks: %w", err)
	}

	entries := make([]models.ScheduleEntry, 0, len(talks))
	for _, talk := range talks {
		speakerName := "N/A"
		speaker, err := s.speakers.GetByID(talk.SpeakerID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve speaker: %w", err)
		}
		if speaker != nil {
			speakerName = speaker.Name
		}
		entries = append(entries, models.ScheduleEntry{
			ID:          talk.ID,
			Title:       talk.Title,
			Description: talk.Description,
			Date:        talk.Date,
			StartTime:   talk.StartTime,
			EndTime:     talk.EndTime,
			Location:    talk.Location,
			Speaker:     speakerName,
		})
	}

	if s.cache != nil {
		if payload, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, scheduleCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("Schedule cache write failed", zap.Error(err))
			}
		}
	}
	return entries, nil
}

func (s *talkService) invalidateSchedule() {
	if s.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Del(ctx, scheduleCacheKey).Err(); err != nil {
		s.logger.Warn("Schedule cache invalidation failed", zap.Error(err))
	}
}
