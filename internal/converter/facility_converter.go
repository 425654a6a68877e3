package converter

import (
	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
)

// FacilityToResponse converts a Facility entity to FacilityResponse DTO
func FacilityToResponse(facility *entity.Facility) *dto.FacilityResponse {
	if facility == nil {
		return nil
	}

	return &dto.FacilityResponse{
		ID:             facility.ID,
		Name:           facility.Name,
		City:           facility.City,
		ZipCode:        facility.ZipCode,
		Street:         facility.Street,
		BuildingNumber: facility.BuildingNumber,
	}
}

func FacilitiesToPageResponse(facilities []entity.Facility, total int64, page, size int) *dto.FacilityPageResponse {
	content := make([]dto.FacilityResponse, len(facilities))
	for i := range facilities {
		content[i] = *FacilityToResponse(&facilities[i])
	}

	return &dto.FacilityPageResponse{
		TotalEntries:       total,
		TotalNumberOfPages: totalPages(total, size),
		PageNumber:         page,
		Content:            content,
	}
}
