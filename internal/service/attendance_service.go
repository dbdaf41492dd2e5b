package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"schooladmin/internal/model"
)

type AttendanceRecord struct {
	RollNo string `json:"rollno"`
	Status string `json:"status"`
}

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, value)
}

// SaveBatch inserts one row per record for the given day. There is no
// uniqueness on (rollno, date); submitting the same day twice doubles the
// rows, which is how re-marking has always worked. Best-effort: rows
// inserted before a failure stay committed, and the slice returned alongside
// the error holds exactly those.
func (s *AttendanceService) SaveBatch(date string, records []AttendanceRecord) ([]model.Attendance, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	saved := make([]model.Attendance, 0, len(records))
	for _, rec := range records {
		row := model.Attendance{RollNo: rec.RollNo, Date: day, Status: rec.Status}
		if err := s.db.Create(&row).Error; err != nil {
			return saved, err
		}
		saved = append(saved, row)
	}
	return saved, nil
}

// GetByRoll returns the roll's attendance most recent first. An empty
// history reads as not-found, matching the API contract.
func (s *AttendanceService) GetByRoll(rollno string) ([]model.Attendance, error) {
	var rows []model.Attendance
	if err := s.db.Where("rollno = ?", rollno).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}
