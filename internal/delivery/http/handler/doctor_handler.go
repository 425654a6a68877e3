package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/usecase"
	"medical-clinic-api/pkg/apperror"
	"medical-clinic-api/pkg/response"
	"medical-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	page, size := parsePaging(r)

	doctors, err := h.doctorUsecase.GetDoctors(r.Context(), page, size)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	doctor, err := h.doctorUsecase.GetDoctorByEmail(r.Context(), email)
	if err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req dto.UpsertDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.EditDoctor(r.Context(), email, &req)
	if err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), email); err != nil {
		h.writeDoctorError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *DoctorHandler) writeDoctorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, apperror.Detail(err))
	case errors.Is(err, usecase.ErrDoctorAlreadyExists):
		response.Conflict(w, apperror.Detail(err))
	default:
		response.InternalServerError(w, "Failed to process doctor request")
	}
}
