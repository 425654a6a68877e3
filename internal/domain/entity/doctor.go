package entity

// Doctor represents a practitioner that visits are scheduled for
type Doctor struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string `gorm:"type:varchar(255);uniqueIndex:idx_doctors_email;not null" json:"email"`
	FirstName      string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialization string `gorm:"type:varchar(100);not null;index" json:"specialization"`

	// Relationships
	Visits []Visit `gorm:"foreignKey:DoctorID" json:"visits,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
