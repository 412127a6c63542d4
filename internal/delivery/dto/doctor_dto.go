package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorAvailabilityResponse annotates a bookable doctor with their
// booking load for the requested day. RemainingSlots is meaningless
// when Unbounded is true.
type DoctorAvailabilityResponse struct {
	ID                     uuid.UUID       `json:"id"`
	FullName               string          `json:"full_name"`
	Specialty              string          `json:"specialty"`
	DailyCapacity          int             `json:"daily_capacity"`
	ConsultationFee        decimal.Decimal `json:"consultation_fee"`
	TodaysAppointmentCount int             `json:"todays_appointment_count"`
	IsAvailable            bool            `json:"is_available"`
	Unbounded              bool            `json:"unbounded"`
	RemainingSlots         int             `json:"remaining_slots"`
}

type DoctorAvailabilityListResponse struct {
	Date    string                       `json:"date"`
	Doctors []DoctorAvailabilityResponse `json:"doctors"`
	Total   int                          `json:"total"`
}

type DoctorQueueEntryResponse struct {
	PatientID           uuid.UUID       `json:"patient_id"`
	PatientName         string          `json:"patient_name"`
	MedicalRecordNumber string          `json:"medical_record_number"`
	SequenceNumber      int             `json:"sequence_number"`
	Status              string          `json:"status"`
	Fee                 decimal.Decimal `json:"fee"`
}

type DoctorQueueResponse struct {
	DoctorID   uuid.UUID                  `json:"doctor_id"`
	DoctorName string                     `json:"doctor_name"`
	Date       string                     `json:"date"`
	Entries    []DoctorQueueEntryResponse `json:"entries"`
	Total      int                        `json:"total"`
}
