package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-management-backend/internal/delivery/dto"
	"hospital-management-backend/internal/usecase"
	"hospital-management-backend/pkg/metrics"
	"hospital-management-backend/pkg/response"
	"hospital-management-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	receptionUsecase    usecase.ReceptionUsecase
	validator           *validator.CustomValidator
	collector           *metrics.Collector
}

func NewPatientHandler(
	registrationUsecase usecase.RegistrationUsecase,
	receptionUsecase usecase.ReceptionUsecase,
	validator *validator.CustomValidator,
	collector *metrics.Collector,
) *PatientHandler {
	return &PatientHandler{
		registrationUsecase: registrationUsecase,
		receptionUsecase:    receptionUsecase,
		validator:           validator,
		collector:           collector,
	}
}

func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.registrationUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		if req.DoctorID != "" {
			h.collector.ObserveBooking(bookingOutcome(err))
		}
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrDoctorNotBookable):
			response.Error(w, http.StatusBadRequest, "Doctor has no specialty and cannot take appointments", nil)
		case errors.Is(err, usecase.ErrDoctorFullyBooked):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.Error(w, http.StatusBadRequest, "Invalid appointment date format, use YYYY-MM-DD", nil)
		case errors.Is(err, usecase.ErrInvalidDateOfBirth):
			response.Error(w, http.StatusBadRequest, "Invalid date of birth format, use YYYY-MM-DD", nil)
		case errors.Is(err, usecase.ErrMedicalRecordNumberExists):
			response.Error(w, http.StatusConflict, "Medical record number already exists", nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	if patient.Appointment != nil {
		h.collector.ObserveBooking(metrics.BookingOutcomeBooked)
	}
	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.receptionUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	patients, err := h.receptionUsecase.ListPatients(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	totalPages := 0
	if patients.Limit > 0 {
		totalPages = int((patients.Total + int64(patients.Limit) - 1) / int64(patients.Limit))
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients.Patients, &response.Meta{
		Page:       patients.Page,
		Limit:      patients.Limit,
		Total:      patients.Total,
		TotalPages: totalPages,
	})
}

// bookingOutcome maps planner rejections to metric labels.
func bookingOutcome(err error) string {
	switch {
	case errors.Is(err, usecase.ErrDoctorFullyBooked):
		return metrics.BookingOutcomeCapacityRejected
	case errors.Is(err, usecase.ErrDoctorNotBookable):
		return metrics.BookingOutcomeNotBookable
	default:
		return metrics.BookingOutcomeFailed
	}
}
