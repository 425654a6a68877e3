package dto

// Request DTOs

type UpsertDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
}

// Response DTOs

type DoctorResponse struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization"`
}

type DoctorPageResponse struct {
	TotalEntries       int64            `json:"total_entries"`
	TotalNumberOfPages int              `json:"total_number_of_pages"`
	PageNumber         int              `json:"page_number"`
	Content            []DoctorResponse `json:"content"`
}
