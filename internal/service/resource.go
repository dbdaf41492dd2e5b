package service

import (
	"errors"

	"gorm.io/gorm"

	"schooladmin/internal/auth"
)

// Resource is the shared repository behind students, teachers, principals
// and superusers. Each instance is parameterized by its model type plus a
// selector for the stored secondary login identifier (roll number or
// employee id); everything else the four entities do is identical.
type Resource[T any] struct {
	db       *gorm.DB
	verifier auth.Verifier
	secret   func(*T) string
}

func NewResource[T any](db *gorm.DB, verifier auth.Verifier, secret func(*T) string) *Resource[T] {
	return &Resource[T]{db: db, verifier: verifier, secret: secret}
}

func (r *Resource[T]) List() ([]T, error) {
	records := make([]T, 0)
	if err := r.db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Resource[T]) Get(id uint) (*T, error) {
	var record T
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Resource[T]) Create(record *T) error {
	return r.db.Create(record).Error
}

// Update applies the given columns to the record with that id. The img
// column is only present in fields when a new file was uploaded, so a
// file-less update leaves the stored image path alone.
func (r *Resource[T]) Update(id uint, fields map[string]any) (*T, error) {
	var record T
	res := r.db.Model(&record).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(id)
}

// Login returns the record whose name matches exactly and whose secondary
// identifier passes the verifier. With the plain verifier this reproduces
// the historical find-by-both-fields equality check.
func (r *Resource[T]) Login(name, identifier string) (*T, error) {
	var candidates []T
	if err := r.db.Where("name = ?", name).Find(&candidates).Error; err != nil {
		return nil, err
	}
	for i := range candidates {
		if r.verifier.Verify(identifier, r.secret(&candidates[i])) {
			return &candidates[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}
