package repository

import (
	"time"

	"medical-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type VisitRepository interface {
	// Create persists an open slot. Returns ErrConflict when the store's
	// overlap constraint rejects the interval (lost check-then-act race).
	Create(db *gorm.DB, visit *entity.Visit) error
	FindByID(db *gorm.DB, id int64) (*entity.Visit, error)
	Delete(db *gorm.DB, id int64) error

	// ExistsOverlapping reports whether any visit of the doctor overlaps
	// [startTime, endTime] inclusively (touching boundaries count).
	ExistsOverlapping(db *gorm.DB, doctorID int64, startTime, endTime time.Time) (bool, error)

	// AssignPatient sets the patient on a visit only while it is still open.
	// Returns the number of affected rows: 0 means the slot was claimed by a
	// concurrent request between read and write.
	AssignPatient(db *gorm.DB, visitID, patientID int64) (int64, error)

	// FindAllFiltered folds the present filter fields into one conjunctive
	// query and runs it with paging. now anchors the "only available"
	// predicate.
	FindAllFiltered(db *gorm.DB, filter *entity.VisitFilter, now time.Time, page, size int) ([]entity.Visit, int64, error)

	FindAllByDoctorID(db *gorm.DB, doctorID int64, page, size int) ([]entity.Visit, int64, error)
	FindAllByPatientID(db *gorm.DB, patientID int64, page, size int) ([]entity.Visit, int64, error)

	DetachDoctor(db *gorm.DB, doctorID int64) error
	DetachPatient(db *gorm.DB, patientID int64) error
}
