package service

import (
	"fmt"

	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

type SpeakerService interface {
	Create(name, background string) (*models.Speaker, error)
	List() ([]*models.Speaker, error)
	Delete(id int64) error
}

type speakerService struct {
	speakers repository.SpeakerRepository
	logger   *zap.Logger
}

func NewSpeakerService(speakers repository.SpeakerRepository, logger *zap.Logger) SpeakerService {
	return &speakerService{speakers: speakers, logger: logger}
}

func (s *speakerService) Create(name, background string) (*models.Speaker, error) {
	speaker := &models.Speaker{Name: name, Background: background}
	if err := s.speakers.Create(speaker); err != nil {
		s.logger.Error("Failed to create speaker", zap.Error(err))
		return nil, fmt.Errorf("failed to create speaker: %w", err)
	}
	return speaker, nil
}

func (s *speakerService) List() ([]*models.Speaker, error) {
	speakers, err := s.speakers.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list speakers: %w", err)
	}
	return speakers, nil
}

func (s *speakerService) Delete(id int64) error {
	deleted, err := s.speakers.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete speaker: %w", err)
	}
	if !deleted {
		return ErrSpeakerNotFound
	}
	return nil
}
