package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"eventbackend/internal/models"
	"eventbackend/internal/repository"
)

type RatingService interface {
	Rate(userID, talkID int64, score int, comment *string) (*models.Rating, error)
	ListForUser(userID int64) ([]models.RatingSummary, error)
	SummaryByTalk() ([]models.TalkRatings, error)
}

type ratingService struct {
	ratings  repository.RatingRepository
	checkIns repository.CheckInRepository
	talks    repository.TalkRepository
	speakers repository.SpeakerRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

func NewRatingService(ratings repository.RatingRepository, checkIns repository.CheckInRepository,
	talks repository.TalkRepository, speakers repository.SpeakerRepository,
	users repository.UserRepository, logger *zap.Logger) RatingService {
	return &ratingService{
		ratings:  ratings,
		checkIns: checkIns,
		talks:    talks,
		speakers: speakers,
		users:    users,
		logger:   logger,
	}
}

// Rate records a 1-5 score for a talk the user has checked into.
func (s *ratingService) Rate(userID, talkID int64, score int, comment *string) (*models.Rating, error) {
	talk, err := s.talks.GetByID(talkID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve talk: %w", err)
	}
	if talk == nil {
		return nil, ErrTalkNotFound
	}

	checkIn, err := s.checkIns.GetByUserAndTalk(userID, talkID)
	if err != nil {
		return nil, fmt.Errorf("failed to check attendance: %w", err)
	}
	if checkIn == nil {
		return nil, ErrNoCheckInForRating
	}

	existing, err := s.ratings.GetByUserAndTalk(userID, talkID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyRated
	}

	if score < 1 || score > 5 {
		return nil, ErrInvalidRating
	}

	rating := &models.Rating{
		UserID:  userID,
		TalkID:  talkID,
		Score:   score,
		Comment: comment,
	}
	if err := s.ratings.Create(rating); err != nil {
		s.logger.Error("Failed to create rating", zap.Int64("user_id", userID),
			zap.Int64("talk_id", talkID), zap.Error(err))
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	return rating, nil
}

func (s *ratingService) ListForUser(userID int64) ([]models.RatingSummary, error) {
	ratings, err := s.ratings.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	summaries := make([]models.RatingSummary, 0, len(ratings))
	for _, rating := range ratings {
		title := "N/A"
		talk, err := s.talks.GetByID(rating.TalkID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve talk: %w", err)
		}
		if talk != nil {
			title = talk.Title
		}
		summaries = append(summaries, models.RatingSummary{
			ID:        rating.ID,
			TalkTitle: title,
			Score:     rating.Score,
			Comment:   rating.Comment,
		})
	}
	return summaries, nil
}

// SummaryByTalk returns every talk with its ratings and a 1-decimal average.
func (s *ratingService) SummaryByTalk() ([]models.TalkRatings, error) {
	talks, err := s.talks.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list talks: %w", err)
	}

	result := make([]models.TalkRatings, 0, len(talks))
	for _, talk := range talks {
		speakerName := "N/A"
		speaker, err := s.speakers.GetByID(talk.SpeakerID)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve speaker: %w", err)
		}
		if speaker != nil {
			speakerName = speaker.Name
		}

		ratings, err := s.ratings.ListByTalk(talk.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list ratings: %w", err)
		}

		entries := make([]models.TalkRating, 0, len(ratings))
		sum := 0
		for _, rating := range ratings {
			userName := "Anonymous"
			user, err := s.users.GetByID(rating.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to retrieve user: %w", err)
			}
			if user != nil {
				userName = user.Name
			}
			entries = append(entries, models.TalkRating{
				ID:       rating.ID,
				UserName: userName,
				Score:    rating.Score,
				Comment:  rating.Comment,
			})
			sum += rating.Score
		}

		average := 0.0
		if len(ratings) > 0 {
			average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
		}

		result = append(result, models.TalkRatings{
			TalkID:  talk.ID,
			Title:   talk.Title,
			Speaker: speakerName,
			Date:    talk.Date,
			Average: average,
			Total:   len(ratings),
			Ratings: entries,
		})
	}
	return result, nil
}
