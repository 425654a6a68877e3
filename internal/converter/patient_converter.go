package converter

import (
	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		Email:       patient.Email,
		IDCardNo:    patient.IDCardNo,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		PhoneNumber: patient.PhoneNumber,
	}
}

func PatientsToPageResponse(patients []entity.Patient, total int64, page, size int) *dto.PatientPageResponse {
	content := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		content[i] = *PatientToResponse(&patients[i])
	}

	return &dto.PatientPageResponse{
		TotalEntries:       total,
		TotalNumberOfPages: totalPages(total, size),
		PageNumber:         page,
		Content:            content,
	}
}
