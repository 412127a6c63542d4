package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterPatientRequest creates a patient, optionally with an initial
// appointment. An empty doctor_id means the patient is registered
// without a booking. An empty appointment_date books for today.
type RegisterPatientRequest struct {
	MedicalRecordNumber string `json:"medical_record_number" validate:"required,max=50"`
	FullName            string `json:"full_name" validate:"required,max=255"`
	PhoneNumber         string `json:"phone_number" validate:"omitempty,max=20"`
	DateOfBirth         string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender              string `json:"gender" validate:"required,oneof=M F"`
	Address             string `json:"address" validate:"omitempty"`
	DoctorID            string `json:"doctor_id" validate:"omitempty,uuid"`
	AppointmentDate     string `json:"appointment_date" validate:"omitempty,datetime=2006-01-02"`
}

type PatientResponse struct {
	ID                  uuid.UUID            `json:"id"`
	MedicalRecordNumber string               `json:"medical_record_number"`
	FullName            string               `json:"full_name"`
	PhoneNumber         string               `json:"phone_number,omitempty"`
	DateOfBirth         string               `json:"date_of_birth"`
	Gender              string               `json:"gender"`
	Address             string               `json:"address,omitempty"`
	Appointment         *AppointmentResponse `json:"appointment,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
