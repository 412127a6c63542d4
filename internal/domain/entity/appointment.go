package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCome      AppointmentStatus = "come"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusCome,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is the booking value embedded in a patient record.
// DoctorName and Fee are point-in-time snapshots taken from the doctor
// at booking time, not live references. Date carries day granularity
// only; SequenceNumber is the 1-based booking order for the
// (doctor, calendar day) pair. BookedAt is the raw booking timestamp,
// used as a fallback ordering key when sequence numbers are absent.
type Appointment struct {
	DoctorID       uuid.UUID         `gorm:"type:uuid;index" json:"doctor_id"`
	DoctorName     string            `gorm:"type:varchar(255)" json:"doctor_name"`
	Fee            decimal.Decimal   `gorm:"type:decimal(10,2)" json:"fee"`
	Date           time.Time         `gorm:"type:date;index" json:"date"`
	SequenceNumber int               `json:"sequence_number"`
	Status         AppointmentStatus `gorm:"type:varchar(20)" json:"status"`
	BookedAt       time.Time         `json:"booked_at"`
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
