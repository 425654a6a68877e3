package repository

import (
	"errors"

	"medical-clinic-api/internal/domain/entity"
	domainRepo "medical-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type facilityRepository struct{}

func NewFacilityRepository() domainRepo.FacilityRepository {
	return &facilityRepository{}
}

func (r *facilityRepository) Create(db *gorm.DB, facility *entity.Facility) error {
	if err := db.Create(facility).Error; err != nil {
		if isConstraintViolation(err) {
			return domainRepo.ErrConflict
		}
		return err
	}
	return nil
}

func (r *facilityRepository) FindByID(db *gorm.DB, id int64) (*entity.Facility, error) {
	var facility entity.Facility
	err := db.Where("id = ?", id).First(&facility).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepository) ExistsByName(db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.Model(&entity.Facility{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *facilityRepository) FindAll(db *gorm.DB, page, size int) ([]entity.Facility, int64, error) {
	var total int64
	if err := db.Model(&entity.Facility{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var facilities []entity.Facility
	err := db.Order("id").Offset(page * size).Limit(size).Find(&facilities).Error
	if err != nil {
		return nil, 0, err
	}
	return facilities, total, nil
}

func (r *facilityRepository) Update(db *gorm.DB, facility *entity.Facility) error {
	if err := db.Save(facility).Error; err != nil {
		if isConstraintViolation(err) {
			return domainRepo.ErrConflict
		}
		return err
	}
	return nil
}

func (r *facilityRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.Facility{}).Error
}
