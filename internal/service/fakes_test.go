package service

import (
	"eventbackend/internal/models"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByRole(role string) ([]*models.User, error) {
	var result []*models.User
	for id := int64(1); id <= r.nextID; id++ {
		if user, ok := r.users[id]; ok && user.Role == role {
			clone := *user
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) UpdateName(id int64, name string) error {
	if user, ok := r.users[id]; ok {
		user.Name = name
	}
	return nil
}

func (r *fakeUserRepo) UpdateEmail(id int64, email string) error {
	if user, ok := r.users[id]; ok {
		user.Email = email
	}
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(id int64, hash string) error {
	if user, ok := r.users[id]; ok {
		user.PasswordHash = hash
	}
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.users, id)
	return nil
}

type fakeSpeakerRepo struct {
	speakers map[int64]*models.Speaker
	nextID   int64
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{speakers: make(map[int64]*models.Speaker)}
}

func (r *fakeSpeakerRepo) Create(speaker *models.Speaker) error {
	r.nextID++
	speaker.ID = r.nextID
	clone := *speaker
	r.speakers[speaker.ID] = &clone
	return nil
}

func (r *fakeSpeakerRepo) GetByID(id int64) (*models.Speaker, error) {
	speaker, ok := r.speakers[id]
	if !ok {
		return nil, nil
	}
	clone := *speaker
	return &clone, nil
}

func (r *fakeSpeakerRepo) List() ([]*models.Speaker, error) {
	var result []*models.Speaker
	for id := int64(1); id <= r.nextID; id++ {
		if speaker, ok := r.speakers[id]; ok {
			clone := *speaker
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeSpeakerRepo) Delete(id int64) (bool, error) {
	if _, ok := r.speakers[id]; !ok {
		return false, nil
	}
	delete(r.speakers, id)
	return true, nil
}

type fakeTalkRepo struct {
	talks  map[int64]*models.Talk
	nextID int64
}

func newFakeTalkRepo() *fakeTalkRepo {
	return &fakeTalkRepo{talks: make(map[int64]*models.Talk)}
}

func (r *fakeTalkRepo) Create(talk *models.Talk) error {
	r.nextID++
	talk.ID = r.nextID
	clone := *talk
	r.talks[talk.ID] = &clone
	return nil
}

func (r *fakeTalkRepo) GetByID(id int64) (*models.Talk, error) {
	talk, ok := r.talks[id]
	if !ok {
		return nil, nil
	}
	clone := *talk
	return &clone, nil
}

func (r *fakeTalkRepo) List() ([]*models.Talk, error) {
	var result []*models.Talk
	for id := int64(1); id <= r.nextID; id++ {
		if talk, ok := r.talks[id]; ok {
			clone := *talk
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeTalkRepo) Delete(id int64) (bool, error) {
	if _, ok := r.talks[id]; !ok {
		return false, nil
	}
	delete(r.talks, id)
	return true, nil
}

type fakeCheckInRepo struct {
	checkIns map[int64]*models.CheckIn
	nextID   int64
}

func newFakeCheckInRepo() *fakeCheckInRepo {
	return &fakeCheckInRepo{checkIns: make(map[int64]*models.CheckIn)}
}

func (r *fakeCheckInRepo) Create(checkIn *models.CheckIn) error {
	r.nextID++
	checkIn.ID = r.nextID
	clone := *checkIn
	r.checkIns[checkIn.ID] = &clone
	return nil
}

func (r *fakeCheckInRepo) GetByUserAndTalk(userID, talkID int64) (*models.CheckIn, error) {
	for _, checkIn := range r.checkIns {
		if checkIn.UserID == userID && checkIn.TalkID == talkID {
			clone := *checkIn
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckInRepo) ListByUser(userID int64) ([]*models.CheckIn, error) {
	var result []*models.CheckIn
	for id := int64(1); id <= r.nextID; id++ {
		if checkIn, ok := r.checkIns[id]; ok && checkIn.UserID == userID {
			clone := *checkIn
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeCheckInRepo) DeleteByUser(userID int64) error {
	for id, checkIn := range r.checkIns {
		if checkIn.UserID == userID {
			delete(r.checkIns, id)
		}
	}
	return nil
}

type fakeRatingRepo struct {
	ratings map[int64]*models.Rating
	nextID  int64
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: make(map[int64]*models.Rating)}
}

func (r *fakeRatingRepo) Create(rating *models.Rating) error {
	r.nextID++
	rating.ID = r.nextID
	clone := *rating
	r.ratings[rating.ID] = &clone
	return nil
}

func (r *fakeRatingRepo) GetByUserAndTalk(userID, talkID int64) (*models.Rating, error) {
	for _, rating := range r.ratings {
		if rating.UserID == userID && rating.TalkID == talkID {
			clone := *rating
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRatingRepo) ListByUser(userID int64) ([]*models.Rating, error) {
	var result []*models.Rating
	for id := int64(1); id <= r.nextID; id++ {
		if rating, ok := r.ratings[id]; ok && rating.UserID == userID {
			clone := *rating
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeRatingRepo) ListByTalk(talkID int64) ([]*models.Rating, error) {
	var result []*models.Rating
	for id := int64(1); id <= r.nextID; id++ {
		if rating, ok := r.ratings[id]; ok && rating.TalkID == talkID {
			clone := *rating
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeRatingRepo) DeleteByUser(userID int64) error {
	for id, rating := range r.ratings {
		if rating.UserID == userID {
			delete(r.ratings, id)
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	notifications map[int64]*models.Notification
	nextID        int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[int64]*models.Notification)}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.nextID++
	notification.ID = r.nextID
	clone := *notification
	r.notifications[notification.ID] = &clone
	return nil
}

func (r *fakeNotificationRepo) GetByID(id int64) (*models.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	clone := *notification
	return &clone, nil
}

func (r *fakeNotificationRepo) ListByUser(userID int64) ([]*models.Notification, error) {
	var result []*models.Notification
	for id := r.nextID; id >= 1; id-- {
		if notification, ok := r.notifications[id]; ok && notification.UserID == userID {
			clone := *notification
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkRead(id int64) error {
	if notification, ok := r.notifications[id]; ok {
		notification.Read = true
	}
	return nil
}

func (r *fakeNotificationRepo) DeleteByUser(userID int64) error {
	for id, notification := range r.notifications {
		if notification.UserID == userID {
			delete(r.notifications, id)
		}
	}
	return nil
}
