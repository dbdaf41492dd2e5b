package service

import (
	"errors"

	"gorm.io/gorm"

	"schooladmin/internal/model"
)

// MarkEntry is one submitted score. Type "classtest" targets the classtest
// column; any other value targets cycletest.
type MarkEntry struct {
	RollNo string  `json:"rollno"`
	Mark   float64 `json:"mark"`
	Type   string  `json:"type"`
}

type MarkService struct {
	db *gorm.DB
}

func NewMarkService(db *gorm.DB) *MarkService {
	return &MarkService{db: db}
}

// SaveBatch upserts one mark row per roll number, keyed solely on rollno:
// the first score of either kind creates the row, later scores update it in
// place, and the untargeted column is left as-is. Entries are processed in
// input order, so a later entry for the same roll wins. The batch is
// best-effort: a failure partway through leaves earlier upserts committed.
func (s *MarkService) SaveBatch(entries []MarkEntry) error {
	for _, e := range entries {
		column := "cycletest"
		if e.Type == "classtest" {
			column = "classtest"
		}
		res := s.db.Model(&model.Mark{}).Where("rollno = ?", e.RollNo).Update(column, e.Mark)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			continue
		}
		mark := model.Mark{RollNo: e.RollNo}
		if column == "classtest" {
			mark.ClassTest = &e.Mark
		} else {
			mark.CycleTest = &e.Mark
		}
		if err := s.db.Create(&mark).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *MarkService) GetByRoll(rollno string) (*model.Mark, error) {
	var mark model.Mark
	err := s.db.Where("rollno = ?", rollno).First(&mark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}
