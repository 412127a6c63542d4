package handler

import (
	"errors"
	"net/http"

	"hospital-management-backend/internal/usecase"
	"hospital-management-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
	}
}

// GetAvailability returns the bookable doctors annotated with their
// load for ?date=YYYY-MM-DD (today when omitted).
func (h *DoctorHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.directoryUsecase.ListAvailability(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAppointmentDate) {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to get doctor availability")
		return
	}

	response.Success(w, http.StatusOK, "Doctor availability retrieved successfully", doctors)
}

func (h *DoctorHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	queue, err := h.directoryUsecase.ListQueue(r.Context(), doctorID, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get doctor queue")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor queue retrieved successfully", queue)
}
