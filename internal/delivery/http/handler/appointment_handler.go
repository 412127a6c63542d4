package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-management-backend/internal/delivery/dto"
	"hospital-management-backend/internal/usecase"
	"hospital-management-backend/pkg/metrics"
	"hospital-management-backend/pkg/response"
	"hospital-management-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	receptionUsecase usecase.ReceptionUsecase
	validator        *validator.CustomValidator
	collector        *metrics.Collector
}

func NewAppointmentHandler(
	receptionUsecase usecase.ReceptionUsecase,
	validator *validator.CustomValidator,
	collector *metrics.Collector,
) *AppointmentHandler {
	return &AppointmentHandler{
		receptionUsecase: receptionUsecase,
		validator:        validator,
		collector:        collector,
	}
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.receptionUsecase.UpdateAppointment(r.Context(), patientID, &req)
	if err != nil {
		h.collector.ObserveBooking(bookingOutcome(err))
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrDoctorNotBookable):
			response.Error(w, http.StatusBadRequest, "Doctor has no specialty and cannot take appointments", nil)
		case errors.Is(err, usecase.ErrDoctorFullyBooked):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.Error(w, http.StatusBadRequest, "Invalid appointment date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	h.collector.ObserveBooking(metrics.BookingOutcomeBooked)
	response.Success(w, http.StatusOK, "Appointment updated successfully", patient)
}

func (h *AppointmentHandler) ClearAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromPath(w, r)
	if !ok {
		return
	}

	err := h.receptionUsecase.ClearAppointment(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrNoAppointment):
			response.Error(w, http.StatusConflict, "Patient has no appointment", nil)
		default:
			response.InternalServerError(w, "Failed to clear appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cleared successfully", nil)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	patientID, ok := patientIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.receptionUsecase.UpdateAppointmentStatus(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrNoAppointment):
			response.Error(w, http.StatusConflict, "Patient has no appointment", nil)
		case errors.Is(err, usecase.ErrInvalidAppointmentStatus):
			response.Error(w, http.StatusBadRequest, "Invalid appointment status", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", patient)
}

func patientIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return uuid.Nil, false
	}
	return patientID, true
}
