package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventbackend/internal/middleware"
	"eventbackend/internal/models"
	"eventbackend/internal/service"
)

type stubAttendanceService struct{}

func (stubAttendanceService) CheckIn(userID, talkID int64) (*models.CheckIn, error) {
	return &models.CheckIn{ID: 1, UserID: userID, TalkID: talkID}, nil
}

func (stubAttendanceService) ListForUser(userID int64) ([]models.CheckInSummary, error) {
	return nil, nil
}

type stubRatingService struct {
	called bool
	score  int
	err    error
}

func (s *stubRatingService) Rate(userID, talkID int64, score int, comment *string) (*models.Rating, error) {
	s.called = true
	s.score = score
	if s.err != nil {
		return nil, s.err
	}
	return &models.Rating{ID: 1, UserID: userID, TalkID: talkID, Score: score, Comment: comment}, nil
}

func (s *stubRatingService) ListForUser(userID int64) ([]models.RatingSummary, error) {
	return nil, nil
}

func (s *stubRatingService) SummaryByTalk() ([]models.TalkRatings, error) {
	return nil, nil
}

func newRatingRouter(ratings service.RatingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAttendanceHandler(stubAttendanceService{}, ratings, logrus.New())
	router := gin.New()
	router.POST("/ratings", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, int64(1))
		h.Rate(c)
	})
	return router
}

func postRating(router *gin.Engine, payload gin.H) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/ratings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateZeroScoreReachesService(t *testing.T) {
	ratings := &stubRatingService{err: service.ErrInvalidRating}
	router := newRatingRouter(ratings)

	w := postRating(router, gin.H{"talk_id": 1, "score": 0})

	if !ratings.called {
		t.Fatal("a zero score never reached the rating service")
	}
	if ratings.score != 0 {
		t.Fatalf("service got score %d, want 0", ratings.score)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), service.ErrInvalidRating.Error()) {
		t.Fatalf("expected the range-check message, got %s", w.Body.String())
	}
}

func TestRateMissingScoreRejected(t *testing.T) {
	ratings := &stubRatingService{}
	router := newRatingRouter(ratings)

	w := postRating(router, gin.H{"talk_id": 1})

	if ratings.called {
		t.Fatal("service called despite missing score")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRateValidScore(t *testing.T) {
	ratings := &stubRatingService{}
	router := newRatingRouter(ratings)

	w := postRating(router, gin.H{"talk_id": 1, "score": 4})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ratings.score != 4 {
		t.Fatalf("service got score %d, want 4", ratings.score)
	}
}
