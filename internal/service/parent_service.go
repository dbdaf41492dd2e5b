package service

import (
	"gorm.io/gorm"

	"schooladmin/internal/auth"
	"schooladmin/internal/model"
)

type ParentService struct {
	db       *gorm.DB
	verifier auth.Verifier
}

func NewParentService(db *gorm.DB, verifier auth.Verifier) *ParentService {
	return &ParentService{db: db, verifier: verifier}
}

// Signup rejects a second parent for the same student roll number. The
// check happens only here: storage carries no uniqueness constraint, so
// rows written by other paths are not deduplicated.
func (s *ParentService) Signup(parent *model.Parent) error {
	var count int64
	if err := s.db.Model(&model.Parent{}).Where("studntroll = ?", parent.StudentRoll).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateParent
	}
	return s.db.Create(parent).Error
}

// Login returns only the parent's id; the client fetches the rest through
// the parent detail endpoint.
func (s *ParentService) Login(name, studentRoll string) (uint, error) {
	var candidates []model.Parent
	if err := s.db.Where("name = ?", name).Find(&candidates).Error; err != nil {
		return 0, err
	}
	for i := range candidates {
		if s.verifier.Verify(studentRoll, candidates[i].StudentRoll) {
			return candidates[i].ID, nil
		}
	}
	return 0, ErrInvalidCredentials
}

func (s *ParentService) List() ([]model.Parent, error) {
	parents := make([]model.Parent, 0)
	if err := s.db.Find(&parents).Error; err != nil {
		return nil, err
	}
	return parents, nil
}

func (s *ParentService) Get(id uint) (*model.Parent, error) {
	var parent model.Parent
	err := s.db.First(&parent, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &parent, nil
}
