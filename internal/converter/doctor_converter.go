package converter

import (
	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             doctor.ID,
		Email:          doctor.Email,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		Specialization: doctor.Specialization,
	}
}

func DoctorsToPageResponse(doctors []entity.Doctor, total int64, page, size int) *dto.DoctorPageResponse {
	content := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		content[i] = *DoctorToResponse(&doctors[i])
	}

	return &dto.DoctorPageResponse{
		TotalEntries:       total,
		TotalNumberOfPages: totalPages(total, size),
		PageNumber:         page,
		Content:            content,
	}
}
