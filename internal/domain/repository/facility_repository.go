package repository

import (
	"medical-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type FacilityRepository interface {
	Create(db *gorm.DB, facility *entity.Facility) error
	FindByID(db *gorm.DB, id int64) (*entity.Facility, error)
	ExistsByName(db *gorm.DB, name string) (bool, error)
	FindAll(db *gorm.DB, page, size int) ([]entity.Facility, int64, error)
	Update(db *gorm.DB, facility *entity.Facility) error
	Delete(db *gorm.DB, id int64) error
}
