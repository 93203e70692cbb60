package models

type Notification struct {
	ID      int64  `db:"id" json:"id"`
	UserID  int64  `db:"user_id" json:"user_id"`
	Title   string `db:"title" json:"title"`
	Message string `db:"message" json:"message"`
	Read    bool   `db:"read" json:"read"`
}
