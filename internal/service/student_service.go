package service

import (
	"gorm.io/gorm"

	"schooladmin/internal/auth"
	"schooladmin/internal/model"
)

type StudentService struct {
	*Resource[model.Student]
}

func NewStudentService(db *gorm.DB, verifier auth.Verifier) *StudentService {
	return &StudentService{
		Resource: NewResource(db, verifier, func(s *model.Student) string { return s.RollNo }),
	}
}

// Rolls returns only the roll numbers, for the marks and attendance entry
// forms that need a student picker without the full records.
func (s *StudentService) Rolls() ([]model.RollProjection, error) {
	rolls := make([]model.RollProjection, 0)
	if err := s.db.Model(&model.Student{}).Select("rollno").Find(&rolls).Error; err != nil {
		return nil, err
	}
	return rolls, nil
}
