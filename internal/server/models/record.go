package models

import "time"

// Record is a PHQ-9 result stored for an account. (UserID, CreatedAt) is
// unique; CreatedAt is kept at millisecond precision.
type Record struct {
	ID        string
	UserID    string
	Answers   []int
	Total     int
	Severity  string
	Locale    string
	CreatedAt time.Time
	SyncedAt  time.Time
}

// DiaryEntry is one day of a user's journal, unique per (UserID, EntryDate).
type DiaryEntry struct {
	ID        string
	UserID    string
	EntryDate string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
