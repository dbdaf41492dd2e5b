package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"schooladmin/internal/model"
	"schooladmin/internal/service"
)

func TestSaveAttendanceAllowsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	attendance := service.NewAttendanceService(db)

	records := []service.AttendanceRecord{{RollNo: "R1", Status: "present"}}
	for i := 0; i < 2; i++ {
		saved, err := attendance.SaveBatch("2024-03-01", records)
		assert.NoError(t, err)
		assert.Len(t, saved, 1)
	}

	var count int64
	db.Model(&model.Attendance{}).Where("rollno = ?", "R1").Count(&count)
	assert.EqualValues(t, 2, count, "resubmitting the same day inserts a second row")
}

func TestGetAttendanceOrderedByDateDescending(t *testing.T) {
	db := setupTestDB(t)
	attendance := service.NewAttendanceService(db)

	for _, date := range []string{"2024-03-01", "2024-03-03", "2024-03-02"} {
		_, err := attendance.SaveBatch(date, []service.AttendanceRecord{{RollNo: "R1", Status: "present"}})
		assert.NoError(t, err)
	}

	rows, err := attendance.GetByRoll("R1")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i-1].Date.Before(rows[i].Date), "rows must be most recent first")
	}
	assert.Equal(t, "2024-03-03", rows[0].Date.Format("2006-01-02"))
}

func TestGetAttendanceNotFoundWhenEmpty(t *testing.T) {
	db := setupTestDB(t)
	attendance := service.NewAttendanceService(db)

	_, err := attendance.GetByRoll("missing")
	assert.True(t, errors.Is(err, service.ErrNotFound))
}

func TestSaveAttendanceRejectsBadDate(t *testing.T) {
	db := setupTestDB(t)
	attendance := service.NewAttendanceService(db)

	_, err := attendance.SaveBatch("not-a-date", []service.AttendanceRecord{{RollNo: "R1", Status: "present"}})
	assert.True(t, errors.Is(err, service.ErrBadDate))
}

func TestSaveAttendanceAcceptsRFC3339(t *testing.T) {
	db := setupTestDB(t)
	attendance := service.NewAttendanceService(db)

	saved, err := attendance.SaveBatch("2024-03-01T08:00:00Z", []service.AttendanceRecord{
		{RollNo: "R1", Status: "present"},
		{RollNo: "R2", Status: "absent"},
	})
	assert.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Equal(t, "absent", saved[1].Status)
	assert.NotZero(t, saved[1].ID)
}
