// Package scheduling holds the appointment-slot allocation core:
// capacity evaluation, per-doctor per-day sequence numbers, and the
// availability projection that drives doctor selection.
//
// Every function here is pure. Callers pass in an in-memory snapshot of
// patients and doctors (as served by the snapshot cache) and persist
// the returned values themselves; nothing in this package touches a
// repository or mutates its inputs.
package scheduling

import (
	"time"

	"github.com/google/uuid"

	"hospital-management-backend/internal/domain/entity"
)

// CapacityEvaluation is the result of checking a doctor against their
// daily appointment limit. When Unbounded is true the doctor has no
// limit and RemainingSlots is meaningless.
type CapacityEvaluation struct {
	IsAvailable    bool `json:"is_available"`
	Unbounded      bool `json:"unbounded"`
	RemainingSlots int  `json:"remaining_slots"`
}

// EvaluateCapacity determines whether a doctor can accept another
// appointment on a day that already has booked appointments.
// A capacity of zero (or below, for defensive inputs) means unlimited.
func EvaluateCapacity(doctor entity.Doctor, booked int) CapacityEvaluation {
	if doctor.DailyCapacity <= 0 {
		return CapacityEvaluation{IsAvailable: true, Unbounded: true}
	}

	remaining := doctor.DailyCapacity - booked
	if remaining < 0 {
		remaining = 0
	}

	return CapacityEvaluation{
		IsAvailable:    booked < doctor.DailyCapacity,
		RemainingSlots: remaining,
	}
}

// CountAppointmentsOn counts embedded appointments booked with doctorID
// on the given calendar day. excludePatientID skips one patient's own
// appointment, so an edited booking does not count against itself; pass
// uuid.Nil to count everything.
func CountAppointmentsOn(patients []entity.Patient, doctorID uuid.UUID, day time.Time, excludePatientID uuid.UUID) int {
	count := 0
	for i := range patients {
		if patients[i].ID == excludePatientID {
			continue
		}
		appt := patients[i].Appointment
		if appt == nil || appt.DoctorID != doctorID {
			continue
		}
		if !SameCalendarDay(appt.Date, day) {
			continue
		}
		count++
	}
	return count
}
