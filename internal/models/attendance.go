package models

type CheckIn struct {
	ID          int64 `db:"id" json:"id"`
	UserID      int64 `db:"user_id" json:"user_id"`
	TalkID      int64 `db:"talk_id" json:"talk_id"`
	CheckedInAt int64 `db:"checked_in_at" json:"checked_in_at"`
}

// CheckInSummary is a check-in joined with its talk title for listings.
// Title is "N/A" when the talk was deleted after the check-in.
type CheckInSummary struct {
	ID          int64  `json:"id"`
	TalkID      int64  `json:"talk_id"`
	TalkTitle   string `json:"talk_title"`
	CheckedInAt int64  `json:"checked_in_at"`
}

type Rating struct {
	ID      int64   `db:"id" json:"id"`
	UserID  int64   `db:"user_id" json:"user_id"`
	TalkID  int64   `db:"talk_id" json:"talk_id"`
	Score   int     `db:"score" json:"score"`
	Comment *string `db:"comment" json:"comment,omitempty"`
}

type RatingSummary struct {
	ID        int64   `json:"id"`
	TalkTitle string  `json:"talk_title"`
	Score     int     `json:"score"`
	Comment   *string `json:"comment,omitempty"`
}

// TalkRatings groups every rating given to one talk, with its average.
type TalkRatings struct {
	TalkID  int64        `json:"talk_id"`
	Title   string       `json:"title"`
	Speaker string       `json:"speaker"`
	Date    string       `json:"date"`
	Average float64      `json:"average"`
	Total   int          `json:"total"`
	Ratings []TalkRating `json:"ratings"`
}

type TalkRating struct {
	ID       int64   `json:"id"`
	UserName string  `json:"user_name"`
	Score    int     `json:"score"`
	Comment  *string `json:"comment,omitempty"`
}
