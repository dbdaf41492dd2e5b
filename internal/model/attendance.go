package model

import "time"

// Attendance rows are append-only: one row per (rollno, date) submission,
// with no uniqueness — resubmitting the same day produces another row.
type Attendance struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	RollNo string    `gorm:"column:rollno" json:"rollno"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}
