package repository

import (
	"errors"
	"strings"

	"codcoz/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

var ErrDuplicateWeek = errors.New("a menu for this week already exists")

type MenuRecordRepository interface {
	FindByWeek(companyID, startDate string) (*entity.MenuRecord, error)
	FindByCompany(companyID string) ([]*entity.MenuRecord, error)
	Save(record *entity.MenuRecord) error
	Update(record *entity.MenuRecord) error
	Delete(id int) error
	DeleteExpired(before int64) (int64, error)
	DeleteStaleClaims(before int64) (int64, error)
}

type DefaultMenuRecordRepository struct {
	db *gorm.DB
}

func NewMenuRecordRepository(db *gorm.DB) *DefaultMenuRecordRepository {
	return &DefaultMenuRecordRepository{db: db}
}

// FindByWeek returns nil, nil when the company has not planned that week.
func (r *DefaultMenuRecordRepository) FindByWeek(companyID, startDate string) (*entity.MenuRecord, error) {
	var record entity.MenuRecord
	err := r.db.
		Where("company_id = ? AND start_date = ?", companyID, startDate).
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByCompany lists the company's completed records, newest first.
// Claims still waiting for their upstream menu are left out.
func (r *DefaultMenuRecordRepository) FindByCompany(companyID string) ([]*entity.MenuRecord, error) {
	var records []*entity.MenuRecord
	err := r.db.
		Where("company_id = ? AND menu_id <> ''", companyID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).Error
	return records, err
}

// Save inserts record, returning ErrDuplicateWeek when the company already
// has a record for the same start date.
func (r *DefaultMenuRecordRepository) Save(record *entity.MenuRecord) error {
	err := r.db.Create(record).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateWeek
	}
	return err
}

// Update writes every column of an existing record.
func (r *DefaultMenuRecordRepository) Update(record *entity.MenuRecord) error {
	return r.db.Save(record).Error
}

func (r *DefaultMenuRecordRepository) Delete(id int) error {
	return r.db.Delete(&entity.MenuRecord{}, id).Error
}

func (r *DefaultMenuRecordRepository) DeleteExpired(before int64) (int64, error) {
	res := r.db.
		Where("created_at < ?", before).
		Delete(&entity.MenuRecord{})
	return res.RowsAffected, res.Error
}

// DeleteStaleClaims removes claims that never received a menu id, which
// happens when the process dies between claiming a week and creating it.
func (r *DefaultMenuRecordRepository) DeleteStaleClaims(before int64) (int64, error) {
	res := r.db.
		Where("menu_id = '' AND created_at < ?", before).
		Delete(&entity.MenuRecord{})
	return res.RowsAffected, res.Error
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
