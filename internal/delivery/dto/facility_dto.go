package dto

// Request DTOs

type UpsertFacilityRequest struct {
	Name           string `json:"name" validate:"required"`
	City           string `json:"city" validate:"required"`
	ZipCode        string `json:"zip_code" validate:"required"`
	Street         string `json:"street" validate:"required"`
	BuildingNumber string `json:"building_number" validate:"required"`
}

// Response DTOs

type FacilityResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	City           string `json:"city"`
	ZipCode        string `json:"zip_code"`
	Street         string `json:"street"`
	BuildingNumber string `json:"building_number"`
}

type FacilityPageResponse struct {
	TotalEntries       int64              `json:"total_entries"`
	TotalNumberOfPages int                `json:"total_number_of_pages"`
	PageNumber         int                `json:"page_number"`
	Content            []FacilityResponse `json:"content"`
}
