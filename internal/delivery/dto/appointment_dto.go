package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateAppointmentRequest books or moves a patient's appointment.
// An empty date keeps "today" as the target day.
type UpdateAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending come completed cancelled"`
}

type AppointmentResponse struct {
	DoctorID       uuid.UUID       `json:"doctor_id"`
	DoctorName     string          `json:"doctor_name"`
	Fee            decimal.Decimal `json:"fee"`
	Date           string          `json:"date"`
	SequenceNumber int             `json:"sequence_number"`
	Status         string          `json:"status"`
	BookedAt       time.Time       `json:"booked_at"`
}
