package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/usecase"
	"medical-clinic-api/pkg/apperror"
	"medical-clinic-api/pkg/response"
	"medical-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

type FacilityHandler struct {
	facilityUsecase usecase.FacilityUsecase
	validator       *validator.CustomValidator
}

func NewFacilityHandler(facilityUsecase usecase.FacilityUsecase, validator *validator.CustomValidator) *FacilityHandler {
	return &FacilityHandler{
		facilityUsecase: facilityUsecase,
		validator:       validator,
	}
}

func (h *FacilityHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	facility, err := h.facilityUsecase.CreateFacility(r.Context(), &req)
	if err != nil {
		h.writeFacilityError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Facility created successfully", facility)
}

func (h *FacilityHandler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	page, size := parsePaging(r)

	facilities, err := h.facilityUsecase.GetFacilities(r.Context(), page, size)
	if err != nil {
		response.InternalServerError(w, "Failed to get facilities")
		return
	}

	response.Success(w, http.StatusOK, "Facilities retrieved successfully", facilities)
}

func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid facility ID")
		return
	}

	facility, err := h.facilityUsecase.GetFacility(r.Context(), id)
	if err != nil {
		h.writeFacilityError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Facility retrieved successfully", facility)
}

func (h *FacilityHandler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid facility ID")
		return
	}

	var req dto.UpsertFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	facility, err := h.facilityUsecase.EditFacility(r.Context(), id, &req)
	if err != nil {
		h.writeFacilityError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Facility updated successfully", facility)
}

func (h *FacilityHandler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid facility ID")
		return
	}

	if err := h.facilityUsecase.DeleteFacility(r.Context(), id); err != nil {
		h.writeFacilityError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *FacilityHandler) writeFacilityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrFacilityNotFound):
		response.NotFound(w, apperror.Detail(err))
	case errors.Is(err, usecase.ErrFacilityAlreadyExists):
		response.Conflict(w, apperror.Detail(err))
	default:
		response.InternalServerError(w, "Failed to process facility request")
	}
}
