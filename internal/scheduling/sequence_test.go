package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"hospital-management-backend/internal/domain/entity"
)

func bookedPatient(doctorID uuid.UUID, date time.Time, seq int) entity.Patient {
	return entity.Patient{
		ID:       uuid.New(),
		FullName: "Patient",
		Appointment: &entity.Appointment{
			DoctorID:       doctorID,
			DoctorName:     "Dr. Test",
			Date:           date,
			SequenceNumber: seq,
			Status:         entity.AppointmentStatusPending,
			BookedAt:       date.Add(8 * time.Hour),
		},
	}
}

func TestNextSequenceNumberEmptyGroup(t *testing.T) {
	doctorID := uuid.New()
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	if got := NextSequenceNumber(doctorID, day, nil, uuid.Nil); got != 1 {
		t.Fatalf("empty snapshot: got %d, want 1", got)
	}

	// Appointments for other doctors or other days do not count.
	patients := []entity.Patient{
		bookedPatient(uuid.New(), day, 1),
		bookedPatient(doctorID, day.AddDate(0, 0, -1), 4),
	}
	if got := NextSequenceNumber(doctorID, day, patients, uuid.Nil); got != 1 {
		t.Fatalf("unrelated appointments: got %d, want 1", got)
	}
}

func TestNextSequenceNumberMaxPlusOne(t *testing.T) {
	doctorID := uuid.New()
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		seqs []int
		want int
	}{
		{name: "dense", seqs: []int{1, 2, 3}, want: 4},
		{name: "unordered", seqs: []int{3, 1, 2}, want: 4},
		{name: "gapped subset", seqs: []int{2, 5}, want: 6},
		{name: "single", seqs: []int{1}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patients := make([]entity.Patient, 0, len(tt.seqs))
			for _, seq := range tt.seqs {
				patients = append(patients, bookedPatient(doctorID, day, seq))
			}
			if got := NextSequenceNumber(doctorID, day, patients, uuid.Nil); got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

// Editing a booked patient must not count their own appointment: with
// {1,2,3} booked and patient holding 3 excluded, the next number over
// the remaining {1,2} is 3 again, not 4.
func TestNextSequenceNumberExcludesEditedPatient(t *testing.T) {
	doctorID := uuid.New()
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	patients := []entity.Patient{
		bookedPatient(doctorID, day, 1),
		bookedPatient(doctorID, day, 2),
		bookedPatient(doctorID, day, 3),
	}
	edited := patients[2].ID

	if got := NextSequenceNumber(doctorID, day, patients, edited); got != 3 {
		t.Fatalf("re-sequencing with exclusion: got %d, want 3", got)
	}
	if got := NextSequenceNumber(doctorID, day, patients, uuid.Nil); got != 4 {
		t.Fatalf("without exclusion: got %d, want 4", got)
	}
}

// Appointments that never received a number still occupy slots; the
// allocator stays strictly above them.
func TestNextSequenceNumberUnnumberedFallback(t *testing.T) {
	doctorID := uuid.New()
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	patients := []entity.Patient{
		bookedPatient(doctorID, day, 0),
		bookedPatient(doctorID, day, 0),
	}
	if got := NextSequenceNumber(doctorID, day, patients, uuid.Nil); got != 3 {
		t.Fatalf("all unnumbered: got %d, want 3", got)
	}

	patients = append(patients, bookedPatient(doctorID, day, 2))
	if got := NextSequenceNumber(doctorID, day, patients, uuid.Nil); got != 5 {
		t.Fatalf("mixed numbering: got %d, want 5", got)
	}
}

// Grouping compares calendar days, not timestamps: bookings at
// different clock times on the same day share one sequence.
func TestNextSequenceNumberDayGranularity(t *testing.T) {
	doctorID := uuid.New()
	morning := time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC)

	patients := []entity.Patient{
		bookedPatient(doctorID, morning, 1),
		bookedPatient(doctorID, evening, 2),
	}
	if got := NextSequenceNumber(doctorID, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), patients, uuid.Nil); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestNextSequenceNumberDoesNotMutate(t *testing.T) {
	doctorID := uuid.New()
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	patients := []entity.Patient{
		bookedPatient(doctorID, day, 1),
		bookedPatient(doctorID, day, 2),
	}
	before := []int{patients[0].Appointment.SequenceNumber, patients[1].Appointment.SequenceNumber}

	NextSequenceNumber(doctorID, day, patients, uuid.Nil)

	for i, want := range before {
		if patients[i].Appointment.SequenceNumber != want {
			t.Fatalf("patient %d sequence mutated: %d -> %d", i, want, patients[i].Appointment.SequenceNumber)
		}
	}
}

func TestDayQueueOrdering(t *testing.T) {
	doctorID := uuid.New()
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	third := bookedPatient(doctorID, day, 3)
	first := bookedPatient(doctorID, day, 1)
	second := bookedPatient(doctorID, day, 2)
	unnumberedLate := bookedPatient(doctorID, day, 0)
	unnumberedLate.Appointment.BookedAt = day.Add(16 * time.Hour)
	unnumberedEarly := bookedPatient(doctorID, day, 0)
	unnumberedEarly.Appointment.BookedAt = day.Add(9 * time.Hour)

	patients := []entity.Patient{third, unnumberedLate, first, unnumberedEarly, second}
	queue := DayQueue(doctorID, day, patients)

	if len(queue) != 5 {
		t.Fatalf("queue length = %d, want 5", len(queue))
	}

	wantOrder := []uuid.UUID{first.ID, second.ID, third.ID, unnumberedEarly.ID, unnumberedLate.ID}
	for i, want := range wantOrder {
		if queue[i].Patient.ID != want {
			t.Fatalf("queue position %d: got patient %s, want %s", i, queue[i].Patient.ID, want)
		}
	}
}
