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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		h.writePatientError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	page, size := parsePaging(r)

	patients, err := h.patientUsecase.GetPatients(r.Context(), page, size)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	patient, err := h.patientUsecase.GetPatientByEmail(r.Context(), email)
	if err != nil {
		h.writePatientError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req dto.UpsertPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.EditPatient(r.Context(), email, &req)
	if err != nil {
		h.writePatientError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if err := h.patientUsecase.DeletePatient(r.Context(), email); err != nil {
		h.writePatientError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *PatientHandler) writePatientError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, apperror.Detail(err))
	case errors.Is(err, usecase.ErrPatientAlreadyExists):
		response.Conflict(w, apperror.Detail(err))
	default:
		response.InternalServerError(w, "Failed to process patient request")
	}
}
