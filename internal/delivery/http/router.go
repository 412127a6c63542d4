package http

import (
	"net/http"

	"hospital-management-backend/internal/delivery/http/handler"
	"hospital-management-backend/internal/delivery/http/middleware"
	"hospital-management-backend/pkg/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	doctorHandler      *handler.DoctorHandler
	auditLogHandler    *handler.AuditLogHandler
	corsMiddleware     *middleware.CORSMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		doctorHandler:      doctorHandler,
		auditLogHandler:    auditLogHandler,
		corsMiddleware:     corsMiddleware,
		metricsMiddleware:  metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Patient routes
	api.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Appointment routes
	api.HandleFunc("/patients/{id}/appointment", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}/appointment", r.appointmentHandler.ClearAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/appointment/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Doctor routes
	api.HandleFunc("/doctors/availability", r.doctorHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/queue", r.doctorHandler.GetQueue).Methods(http.MethodGet)

	// Audit log routes
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetRecent).Methods(http.MethodGet)

	// Add middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
