package entity

// Patient represents a person who can claim open visit slots
type Patient struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string `gorm:"type:varchar(255);uniqueIndex:idx_patients_email;not null" json:"email"`
	IDCardNo    string `gorm:"column:id_card_no;type:varchar(50);not null" json:"id_card_no"`
	FirstName   string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string `gorm:"type:varchar(100);not null" json:"last_name"`
	PhoneNumber string `gorm:"type:varchar(30);not null" json:"phone_number"`

	// Relationships
	Visits []Visit `gorm:"foreignKey:PatientID" json:"visits,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
