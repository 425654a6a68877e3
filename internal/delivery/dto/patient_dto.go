package dto

// Request DTOs

type UpsertPatientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	IDCardNo    string `json:"id_card_no" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	IDCardNo    string `json:"id_card_no"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

type PatientPageResponse struct {
	TotalEntries       int64             `json:"total_entries"`
	TotalNumberOfPages int               `json:"total_number_of_pages"`
	PageNumber         int               `json:"page_number"`
	Content            []PatientResponse `json:"content"`
}
