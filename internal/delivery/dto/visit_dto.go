package dto

import (
	"time"
)

// Request DTOs

// CreateVisitRequest carries the proposed slot. Fields are pointers on
// purpose: missing-field detection belongs to the scheduling usecase, which
// reports it as invalid visit data rather than a generic validation error.
type CreateVisitRequest struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	DoctorID  *int64     `json:"doctor_id"`
}

// Response DTOs

type VisitResponse struct {
	ID        int64            `json:"id"`
	StartTime time.Time        `json:"start_time"`
	EndTime   time.Time        `json:"end_time"`
	DoctorID  *int64           `json:"doctor_id"`
	PatientID *int64           `json:"patient_id"`
	Doctor    *DoctorResponse  `json:"doctor,omitempty"`
	Patient   *PatientResponse `json:"patient,omitempty"`
}

type VisitPageResponse struct {
	TotalEntries       int64           `json:"total_entries"`
	TotalNumberOfPages int             `json:"total_number_of_pages"`
	PageNumber         int             `json:"page_number"`
	Content            []VisitResponse `json:"content"`
}
