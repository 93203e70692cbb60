package service

import "errors"

// Client-facing errors. Handlers map these to status codes; anything else
// surfaces as a generic server error.
var (
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("invalid token")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrSpeakerNotFound      = errors.New("speaker not found")
	ErrTalkNotFound         = errors.New("talk not found")
	ErrAlreadyCheckedIn     = errors.New("check-in already recorded for this talk")
	ErrNoCheckInForRating   = errors.New("check-in required before rating this talk")
	ErrAlreadyRated         = errors.New("talk already rated")
	ErrInvalidRating        = errors.New("score must be between 1 and 5")
	ErrNoAttendance         = errors.New("no attendance records")
	ErrWrongPassword        = errors.New("current password is incorrect")
	ErrEmptyName            = errors.New("name cannot be blank")
	ErrNotificationNotFound = errors.New("notification not found")
)
