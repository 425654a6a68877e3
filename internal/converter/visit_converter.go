package converter

import (
	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to VisitResponse DTO
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	response := &dto.VisitResponse{
		ID:        visit.ID,
		StartTime: visit.StartTime,
		EndTime:   visit.EndTime,
		DoctorID:  visit.DoctorID,
		PatientID: visit.PatientID,
	}

	if visit.Doctor != nil {
		response.Doctor = DoctorToResponse(visit.Doctor)
	}
	if visit.Patient != nil {
		response.Patient = PatientToResponse(visit.Patient)
	}

	return response
}

// VisitsToPageResponse wraps a page of Visit entities in the pagination
// envelope.
func VisitsToPageResponse(visits []entity.Visit, total int64, page, size int) *dto.VisitPageResponse {
	content := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		content[i] = *VisitToResponse(&visits[i])
	}

	return &dto.VisitPageResponse{
		TotalEntries:       total,
		TotalNumberOfPages: totalPages(total, size),
		PageNumber:         page,
		Content:            content,
	}
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
