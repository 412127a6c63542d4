package scheduling

import (
	"reflect"
	"testing"
	"time"

	"hospital-management-backend/internal/domain/entity"
)

// Doctor X (capacity 2, fully booked) and doctor Y (unlimited, 50
// bookings) on the same day: the projection preserves input order and
// annotates each doctor independently.
func TestProjectAvailability(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	doctorX := testDoctor(2)
	doctorY := testDoctor(0)

	patients := []entity.Patient{
		bookedPatient(doctorX.ID, day, 1),
		bookedPatient(doctorX.ID, day, 2),
	}
	for i := 0; i < 50; i++ {
		patients = append(patients, bookedPatient(doctorY.ID, day, i+1))
	}

	annotated := ProjectAvailability([]entity.Doctor{doctorX, doctorY}, patients, day)

	if len(annotated) != 2 {
		t.Fatalf("annotated length = %d, want 2", len(annotated))
	}
	if annotated[0].ID != doctorX.ID || annotated[1].ID != doctorY.ID {
		t.Fatal("input doctor order not preserved")
	}

	x := annotated[0]
	if x.TodaysAppointmentCount != 2 || x.IsAvailable || x.RemainingSlots != 0 || x.Unbounded {
		t.Fatalf("doctor X annotation wrong: %+v", x)
	}

	y := annotated[1]
	if y.TodaysAppointmentCount != 50 || !y.IsAvailable || !y.Unbounded {
		t.Fatalf("doctor Y annotation wrong: %+v", y)
	}
}

func TestProjectAvailabilityEmptyInputs(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	if got := ProjectAvailability(nil, nil, day); len(got) != 0 {
		t.Fatalf("nil doctors: got %d entries, want 0", len(got))
	}

	doctor := testDoctor(3)
	annotated := ProjectAvailability([]entity.Doctor{doctor}, nil, day)
	if len(annotated) != 1 {
		t.Fatalf("got %d entries, want 1", len(annotated))
	}
	if annotated[0].TodaysAppointmentCount != 0 || !annotated[0].IsAvailable || annotated[0].RemainingSlots != 3 {
		t.Fatalf("empty patient snapshot annotation wrong: %+v", annotated[0])
	}
}

// Two calls over identical inputs must yield deep-equal output and
// leave both input slices untouched.
func TestProjectAvailabilityIdempotent(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	doctors := []entity.Doctor{testDoctor(2), testDoctor(0)}
	patients := []entity.Patient{
		bookedPatient(doctors[0].ID, day, 1),
		bookedPatient(doctors[1].ID, day, 1),
	}

	doctorsBefore := make([]entity.Doctor, len(doctors))
	copy(doctorsBefore, doctors)
	seqBefore := []int{patients[0].Appointment.SequenceNumber, patients[1].Appointment.SequenceNumber}

	first := ProjectAvailability(doctors, patients, day)
	second := ProjectAvailability(doctors, patients, day)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated projection over identical inputs differs")
	}
	if !reflect.DeepEqual(doctors, doctorsBefore) {
		t.Fatal("doctor slice mutated by projection")
	}
	for i, want := range seqBefore {
		if patients[i].Appointment.SequenceNumber != want {
			t.Fatal("patient snapshot mutated by projection")
		}
	}
}

func TestSameCalendarDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different clock time",
			a:    time.Date(2024, 5, 1, 0, 5, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 1, 23, 55, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2024, 5, 1, 23, 55, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 2, 0, 5, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "zoned time normalized to UTC",
			a:    time.Date(2024, 5, 2, 3, 0, 0, 0, jakarta), // 2024-05-01T20:00Z
			b:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameCalendarDay(tt.a, tt.b); got != tt.want {
				t.Fatalf("SameCalendarDay = %v, want %v", got, tt.want)
			}
		})
	}
}
