package entity

import (
	"time"
)

// Visit is a doctor-time reservation slot. PatientID is nil while the slot
// is open and is set exactly once when a patient claims it. DoctorID becomes
// nil only when the doctor is deleted and their visits are detached.
type Visit struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	StartTime time.Time `gorm:"type:timestamptz;not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"type:timestamptz;not null" json:"end_time"`
	DoctorID  *int64    `gorm:"index" json:"doctor_id"`
	PatientID *int64    `gorm:"index" json:"patient_id"`

	// Relationships
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// IsOpen reports whether the slot has no patient assigned yet.
func (v *Visit) IsOpen() bool {
	return v.PatientID == nil
}

// IsPast reports whether the visit starts strictly before now.
func (v *Visit) IsPast(now time.Time) bool {
	return v.StartTime.Before(now)
}

// VisitFilter is the request-side set of optional visit predicates. A nil
// field constrains nothing.
type VisitFilter struct {
	VisitID              *int64
	DoctorID             *int64
	DoctorSpecialization *string
	PatientID            *int64
	OnlyAvailable        *bool
	StartTime            *time.Time
	EndTime              *time.Time
}
