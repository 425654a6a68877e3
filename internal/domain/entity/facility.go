package entity

// Facility represents a clinic location
type Facility struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"type:varchar(255);uniqueIndex:idx_facilities_name;not null" json:"name"`
	City           string `gorm:"type:varchar(100);not null" json:"city"`
	ZipCode        string `gorm:"type:varchar(20);not null" json:"zip_code"`
	Street         string `gorm:"type:varchar(255);not null" json:"street"`
	BuildingNumber string `gorm:"type:varchar(20);not null" json:"building_number"`
}

func (Facility) TableName() string {
	return "facilities"
}
