package scheduling

import (
	"time"

	"github.com/google/uuid"

	"hospital-management-backend/internal/domain/entity"
)

// DoctorAvailability annotates a doctor with their booking load for a
// target calendar day.
type DoctorAvailability struct {
	entity.Doctor
	TodaysAppointmentCount int `json:"todays_appointment_count"`
	CapacityEvaluation
}

// ProjectAvailability builds the availability view for a list of
// candidate doctors against the patient snapshot. The result preserves
// the input doctor order and contains copies; neither input slice is
// mutated. Same inputs always produce the same output.
func ProjectAvailability(doctors []entity.Doctor, patients []entity.Patient, targetDate time.Time) []DoctorAvailability {
	annotated := make([]DoctorAvailability, 0, len(doctors))
	for _, doctor := range doctors {
		booked := CountAppointmentsOn(patients, doctor.ID, targetDate, uuid.Nil)
		annotated = append(annotated, DoctorAvailability{
			Doctor:                 doctor,
			TodaysAppointmentCount: booked,
			CapacityEvaluation:     EvaluateCapacity(doctor, booked),
		})
	}
	return annotated
}
