package http

import (
	"net/http"

	"medical-clinic-api/internal/delivery/http/handler"
	"medical-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	visitHandler     *handler.VisitHandler
	doctorHandler    *handler.DoctorHandler
	patientHandler   *handler.PatientHandler
	facilityHandler  *handler.FacilityHandler
	corsMiddleware   *middleware.CORSMiddleware
	loggerMiddleware *middleware.RequestLoggerMiddleware
}

func NewRouter(
	visitHandler *handler.VisitHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	facilityHandler *handler.FacilityHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggerMiddleware *middleware.RequestLoggerMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		visitHandler:     visitHandler,
		doctorHandler:    doctorHandler,
		patientHandler:   patientHandler,
		facilityHandler:  facilityHandler,
		corsMiddleware:   corsMiddleware,
		loggerMiddleware: loggerMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Visit scheduling
	api.HandleFunc("/visits", r.visitHandler.CreateVisit).Methods(http.MethodPost)
	api.HandleFunc("/visits", r.visitHandler.GetVisits).Methods(http.MethodGet)
	api.HandleFunc("/visits/{id}/patient", r.visitHandler.RegisterPatient).Methods(http.MethodPatch)
	api.HandleFunc("/visits/{id}", r.visitHandler.DeleteVisit).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{id}/visits", r.visitHandler.GetVisitsByDoctor).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/visits", r.visitHandler.GetVisitsByPatient).Methods(http.MethodGet)

	// Doctor management
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{email}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{email}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{email}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patient management
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{email}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{email}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{email}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Facility management
	api.HandleFunc("/facilities", r.facilityHandler.CreateFacility).Methods(http.MethodPost)
	api.HandleFunc("/facilities", r.facilityHandler.GetFacilities).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{id}", r.facilityHandler.GetFacility).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{id}", r.facilityHandler.UpdateFacility).Methods(http.MethodPut)
	api.HandleFunc("/facilities/{id}", r.facilityHandler.DeleteFacility).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggerMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
