package repository

import (
	"errors"
	"time"

	"medical-clinic-api/internal/domain/entity"
	domainRepo "medical-clinic-api/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	if err := db.Create(visit).Error; err != nil {
		if isConstraintViolation(err) {
			return domainRepo.ErrConflict
		}
		return err
	}
	return nil
}

func (r *visitRepository) FindByID(db *gorm.DB, id int64) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.Preload("Doctor").Preload("Patient").Where("id = ?", id).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.Visit{}).Error
}

func (r *visitRepository) ExistsOverlapping(db *gorm.DB, doctorID int64, startTime, endTime time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.Visit{}).
		Where("doctor_id = ? AND start_time <= ? AND end_time >= ?", doctorID, endTime, startTime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AssignPatient claims the slot only while patient_id is still null. The
// affected-rows count is the decisive answer under concurrent claims.
func (r *visitRepository) AssignPatient(db *gorm.DB, visitID, patientID int64) (int64, error) {
	result := db.Model(&entity.Visit{}).
		Where("id = ? AND patient_id IS NULL", visitID).
		Update("patient_id", patientID)
	return result.RowsAffected, result.Error
}

func (r *visitRepository) FindAllFiltered(db *gorm.DB, filter *entity.VisitFilter, now time.Time, page, size int) ([]entity.Visit, int64, error) {
	conditions := BuildVisitConditions(filter, now)
	query := db.Model(&entity.Visit{})
	if len(conditions) > 0 {
		query = query.Where(clause.And(conditions...))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var visits []entity.Visit
	err := query.
		Preload("Doctor").
		Preload("Patient").
		Order("visits.id").
		Offset(page * size).
		Limit(size).
		Find(&visits).Error
	if err != nil {
		return nil, 0, err
	}
	return visits, total, nil
}

func (r *visitRepository) FindAllByDoctorID(db *gorm.DB, doctorID int64, page, size int) ([]entity.Visit, int64, error) {
	return r.findAllWhere(db, "doctor_id = ?", doctorID, page, size)
}

func (r *visitRepository) FindAllByPatientID(db *gorm.DB, patientID int64, page, size int) ([]entity.Visit, int64, error) {
	return r.findAllWhere(db, "patient_id = ?", patientID, page, size)
}

func (r *visitRepository) findAllWhere(db *gorm.DB, condition string, id int64, page, size int) ([]entity.Visit, int64, error) {
	query := db.Model(&entity.Visit{}).Where(condition, id)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var visits []entity.Visit
	err := query.
		Preload("Doctor").
		Preload("Patient").
		Order("visits.id").
		Offset(page * size).
		Limit(size).
		Find(&visits).Error
	if err != nil {
		return nil, 0, err
	}
	return visits, total, nil
}

func (r *visitRepository) DetachDoctor(db *gorm.DB, doctorID int64) error {
	return db.Model(&entity.Visit{}).
		Where("doctor_id = ?", doctorID).
		Update("doctor_id", nil).Error
}

func (r *visitRepository) DetachPatient(db *gorm.DB, patientID int64) error {
	return db.Model(&entity.Visit{}).
		Where("patient_id = ?", patientID).
		Update("patient_id", nil).Error
}

// isConstraintViolation reports whether err is a PostgreSQL unique (23505)
// or exclusion (23P01) violation. 23P01 is raised by the visits_no_overlap
// constraint when two concurrent creations pass the advisory check.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	return false
}
