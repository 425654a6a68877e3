package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
	"medical-clinic-api/internal/usecase"
	"medical-clinic-api/pkg/apperror"
	"medical-clinic-api/pkg/response"

	"github.com/gorilla/mux"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
	}
}

func (h *VisitHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	visit, err := h.visitUsecase.CreateVisit(r.Context(), &req)
	if err != nil {
		h.writeVisitError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Visit created successfully", visit)
}

func (h *VisitHandler) GetVisits(w http.ResponseWriter, r *http.Request) {
	filter, err := parseVisitFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	page, size := parsePaging(r)

	visits, err := h.visitUsecase.GetVisits(r.Context(), filter, page, size)
	if err != nil {
		h.writeVisitError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) GetVisitsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}
	page, size := parsePaging(r)

	visits, err := h.visitUsecase.GetVisitsByDoctor(r.Context(), doctorID, page, size)
	if err != nil {
		h.writeVisitError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) GetVisitsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}
	page, size := parsePaging(r)

	visits, err := h.visitUsecase.GetVisitsByPatient(r.Context(), patientID, page, size)
	if err != nil {
		h.writeVisitError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	visitID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid visit ID")
		return
	}
	patientID, err := strconv.ParseInt(r.URL.Query().Get("patientId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.visitUsecase.RegisterPatient(r.Context(), visitID, patientID); err != nil {
		h.writeVisitError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *VisitHandler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid visit ID")
		return
	}

	if err := h.visitUsecase.DeleteVisit(r.Context(), visitID); err != nil {
		h.writeVisitError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *VisitHandler) writeVisitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidVisitData),
		errors.Is(err, usecase.ErrVisitInPast),
		errors.Is(err, usecase.ErrInvalidTimeRange),
		errors.Is(err, usecase.ErrInvalidTimeGranularity):
		response.BadRequest(w, apperror.Detail(err))
	case errors.Is(err, usecase.ErrVisitNotFound),
		errors.Is(err, usecase.ErrDoctorNotFound),
		errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, apperror.Detail(err))
	case errors.Is(err, usecase.ErrSlotConflict),
		errors.Is(err, usecase.ErrVisitUnavailable):
		response.Conflict(w, apperror.Detail(err))
	default:
		response.InternalServerError(w, "Failed to process visit request")
	}
}

// parseVisitFilter binds the optional query parameters to a VisitFilter.
// A parameter that is absent stays nil and constrains nothing.
func parseVisitFilter(r *http.Request) (*entity.VisitFilter, error) {
	query := r.URL.Query()
	filter := &entity.VisitFilter{}

	if raw := query.Get("visitId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("invalid visitId")
		}
		filter.VisitID = &id
	}
	if raw := query.Get("doctorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("invalid doctorId")
		}
		filter.DoctorID = &id
	}
	if raw := query.Get("doctorSpecialization"); raw != "" {
		filter.DoctorSpecialization = &raw
	}
	if raw := query.Get("patientId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("invalid patientId")
		}
		filter.PatientID = &id
	}
	if raw := query.Get("onlyAvailable"); raw != "" {
		onlyAvailable, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("invalid onlyAvailable")
		}
		filter.OnlyAvailable = &onlyAvailable
	}
	if raw := query.Get("startTime"); raw != "" {
		startTime, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, errors.New("invalid startTime, use RFC 3339")
		}
		filter.StartTime = &startTime
	}
	if raw := query.Get("endTime"); raw != "" {
		endTime, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, errors.New("invalid endTime, use RFC 3339")
		}
		filter.EndTime = &endTime
	}

	return filter, nil
}

func parsePaging(r *http.Request) (page, size int) {
	page = 0
	size = 10

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			size = parsed
		}
	}
	return page, size
}
