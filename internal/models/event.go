package models

type Speaker struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Background string `db:"background" json:"background"`
}

// Talk start/end times are wall-clock "HH:MM" strings, matching the schedule
// as published. Duration math lives in the certificate service.
type Talk struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description,omitempty"`
	Date        string  `db:"date" json:"date"`
	StartTime   string  `db:"start_time" json:"start_time"`
	EndTime     string  `db:"end_time" json:"end_time"`
	Location    string  `db:"location" json:"location"`
	SpeakerID   int64   `db:"speaker_id" json:"speaker_id"`
}

// ScheduleEntry is a talk as shown on the public schedule, with the speaker
// name resolved.
type ScheduleEntry struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Location    string  `json:"location"`
	Speaker     string  `json:"speaker"`
}
