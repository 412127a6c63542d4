package scheduling

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"hospital-management-backend/internal/domain/entity"
)

// NextSequenceNumber computes the next unused 1-based appointment
// number for (doctorID, targetDate) over the caller's patient snapshot.
//
// The number is the highest assigned one in the group plus one, so the
// result is strictly greater than every existing number even when the
// group carries gaps. Appointments that never received a number are
// treated as implicitly occupying the slots after the highest assigned
// one, in booking-time order, and counted accordingly.
//
// excludePatientID removes one patient from the group, which keeps an
// edited appointment from counting against itself (pass uuid.Nil when
// creating). Returns 1 when the group is empty. The snapshot is not
// mutated.
func NextSequenceNumber(doctorID uuid.UUID, targetDate time.Time, patients []entity.Patient, excludePatientID uuid.UUID) int {
	highest := 0
	unnumbered := 0
	for i := range patients {
		if patients[i].ID == excludePatientID {
			continue
		}
		appt := patients[i].Appointment
		if appt == nil || appt.DoctorID != doctorID {
			continue
		}
		if !SameCalendarDay(appt.Date, targetDate) {
			continue
		}
		if appt.SequenceNumber > 0 {
			if appt.SequenceNumber > highest {
				highest = appt.SequenceNumber
			}
		} else {
			unnumbered++
		}
	}
	return highest + unnumbered + 1
}

// QueueEntry pairs a patient with their appointment for day-queue views.
type QueueEntry struct {
	Patient     entity.Patient
	Appointment entity.Appointment
}

// DayQueue returns the patients booked with doctorID on the given
// calendar day, ordered by sequence number. Appointments without a
// number sort after numbered ones by booking timestamp, giving a stable
// relative order. The input snapshot is not mutated.
func DayQueue(doctorID uuid.UUID, day time.Time, patients []entity.Patient) []QueueEntry {
	entries := make([]QueueEntry, 0)
	for i := range patients {
		appt := patients[i].Appointment
		if appt == nil || appt.DoctorID != doctorID {
			continue
		}
		if !SameCalendarDay(appt.Date, day) {
			continue
		}
		entries = append(entries, QueueEntry{Patient: patients[i], Appointment: *appt})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Appointment, entries[j].Appointment
		if a.SequenceNumber != b.SequenceNumber {
			// Unset numbers (zero) sort last.
			if a.SequenceNumber == 0 {
				return false
			}
			if b.SequenceNumber == 0 {
				return true
			}
			return a.SequenceNumber < b.SequenceNumber
		}
		return a.BookedAt.Before(b.BookedAt)
	})

	return entries
}
