package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient. A patient carries zero or
// one appointment, embedded in the same row rather than a separate
// table; clearing the booking resets the embedded columns.
type Patient struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalRecordNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"medical_record_number"`
	FullName            string    `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber         string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	DateOfBirth         time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender              string    `gorm:"type:char(1);not null" json:"gender"`
	Address             string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Appointment *Appointment `gorm:"embedded;embeddedPrefix:appointment_" json:"appointment,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// HasAppointment reports whether the patient currently holds a booking.
// An empty doctor id means "no appointment", matching the cleared state
// of the embedded columns.
func (p *Patient) HasAppointment() bool {
	return p.Appointment != nil && p.Appointment.DoctorID != uuid.Nil
}
