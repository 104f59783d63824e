package models

import "time"

// Export is the document produced by "export all data".
type Export struct {
	Records    []Record  `json:"records"`
	Language   Language  `json:"language"`
	Consent    *Consent  `json:"consent"`
	ExportDate time.Time `json:"exportDate"`
}

// DiaryDateLayout is the calendar-day format of diary entries.
const DiaryDateLayout = "2006-01-02"

// DiaryEntry is one day of the user's journal. Entries live only in the
// account's cloud storage.
type DiaryEntry struct {
	ID        string    `json:"id"`
	EntryDate string    `json:"entryDate"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
