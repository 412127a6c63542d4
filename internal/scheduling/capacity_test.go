package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hospital-management-backend/internal/domain/entity"
)

func testDoctor(capacity int) entity.Doctor {
	return entity.Doctor{
		ID:              uuid.New(),
		FullName:        "Dr. Test",
		Specialty:       "Cardiology",
		DailyCapacity:   capacity,
		ConsultationFee: decimal.NewFromInt(150),
	}
}

func TestEvaluateCapacityUnlimited(t *testing.T) {
	doctor := testDoctor(0)

	for _, booked := range []int{0, 1, 50, 10000} {
		eval := EvaluateCapacity(doctor, booked)
		if !eval.IsAvailable {
			t.Fatalf("capacity 0 with %d booked: expected available", booked)
		}
		if !eval.Unbounded {
			t.Fatalf("capacity 0 with %d booked: expected unbounded", booked)
		}
	}
}

func TestEvaluateCapacityBounded(t *testing.T) {
	tests := []struct {
		name          string
		capacity      int
		booked        int
		wantAvailable bool
		wantRemaining int
	}{
		{name: "empty day", capacity: 5, booked: 0, wantAvailable: true, wantRemaining: 5},
		{name: "one slot left", capacity: 5, booked: 4, wantAvailable: true, wantRemaining: 1},
		{name: "exactly full", capacity: 2, booked: 2, wantAvailable: false, wantRemaining: 0},
		{name: "over capacity", capacity: 2, booked: 7, wantAvailable: false, wantRemaining: 0},
		{name: "single slot doctor", capacity: 1, booked: 0, wantAvailable: true, wantRemaining: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := EvaluateCapacity(testDoctor(tt.capacity), tt.booked)
			if eval.Unbounded {
				t.Fatal("bounded doctor reported unbounded")
			}
			if eval.IsAvailable != tt.wantAvailable {
				t.Fatalf("IsAvailable = %v, want %v", eval.IsAvailable, tt.wantAvailable)
			}
			if eval.RemainingSlots != tt.wantRemaining {
				t.Fatalf("RemainingSlots = %d, want %d", eval.RemainingSlots, tt.wantRemaining)
			}
		})
	}
}

// Negative capacity is treated like the unset default: unlimited.
func TestEvaluateCapacityNegative(t *testing.T) {
	eval := EvaluateCapacity(testDoctor(-3), 10)
	if !eval.IsAvailable || !eval.Unbounded {
		t.Fatalf("negative capacity should be unlimited, got %+v", eval)
	}
}

func TestCountAppointmentsOn(t *testing.T) {
	doctorID := uuid.New()
	otherDoctorID := uuid.New()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	patients := []entity.Patient{
		bookedPatient(doctorID, day, 1),
		bookedPatient(doctorID, day.Add(13*time.Hour), 2), // same day, later clock time
		bookedPatient(doctorID, day.AddDate(0, 0, 1), 1),  // next day
		bookedPatient(otherDoctorID, day, 1),
		{ID: uuid.New()}, // no appointment
	}

	if got := CountAppointmentsOn(patients, doctorID, day, uuid.Nil); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}

	if got := CountAppointmentsOn(patients, doctorID, day, patients[0].ID); got != 1 {
		t.Fatalf("count excluding own patient = %d, want 1", got)
	}
}
