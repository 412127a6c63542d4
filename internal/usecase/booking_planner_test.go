package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hospital-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

type fakeSnapshot struct {
	patients []entity.Patient
	doctors  []entity.Doctor
}

func (f *fakeSnapshot) Patients(ctx context.Context) ([]entity.Patient, error) {
	return f.patients, nil
}

func (f *fakeSnapshot) Doctors(ctx context.Context) ([]entity.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeSnapshot) InvalidatePatients(ctx context.Context) {}
func (f *fakeSnapshot) InvalidateDoctors(ctx context.Context)  {}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	return nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindDoctors(db *gorm.DB) ([]entity.User, error) {
	return nil, nil
}

func newTestPlanner(t *testing.T, snapshot *fakeSnapshot, users *fakeUserRepo) *bookingPlanner {
	t.Helper()
	if users == nil {
		users = &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	}
	// The fakes ignore the handle, but plan derives a context-scoped
	// session from it, so it must be a fully initialized one.
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	if err != nil {
		t.Fatalf("open dummy db: %v", err)
	}
	log := logrus.New()
	log.SetLevel(logrus.FatalLevel)
	return &bookingPlanner{
		db:       db,
		log:      log,
		userRepo: users,
		snapshot: snapshot,
	}
}

func plannerDoctor(capacity int) entity.Doctor {
	return entity.Doctor{
		ID:              uuid.New(),
		FullName:        "Dr. Ratna",
		Specialty:       "Cardiology",
		DailyCapacity:   capacity,
		ConsultationFee: decimal.NewFromInt(200),
	}
}

func plannedPatient(doctorID uuid.UUID, day time.Time, seq int) entity.Patient {
	return entity.Patient{
		ID: uuid.New(),
		Appointment: &entity.Appointment{
			DoctorID:       doctorID,
			Date:           day,
			SequenceNumber: seq,
			Status:         entity.AppointmentStatusPending,
			BookedAt:       day,
		},
	}
}

func TestPlanAssignsSequenceAndSnapshotsDoctor(t *testing.T) {
	doctor := plannerDoctor(5)
	day := "2024-06-10"
	dayTime := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	snapshot := &fakeSnapshot{
		doctors: []entity.Doctor{doctor},
		patients: []entity.Patient{
			plannedPatient(doctor.ID, dayTime, 1),
			plannedPatient(doctor.ID, dayTime, 2),
		},
	}

	appt, err := newTestPlanner(t, snapshot, nil).plan(context.Background(), doctor.ID, day, uuid.Nil)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	if appt.SequenceNumber != 3 {
		t.Fatalf("sequence = %d, want 3", appt.SequenceNumber)
	}
	if appt.DoctorName != doctor.FullName {
		t.Fatalf("doctor name snapshot = %q, want %q", appt.DoctorName, doctor.FullName)
	}
	if !appt.Fee.Equal(doctor.ConsultationFee) {
		t.Fatalf("fee snapshot = %s, want %s", appt.Fee, doctor.ConsultationFee)
	}
	if !appt.Date.Equal(dayTime) {
		t.Fatalf("date = %s, want %s", appt.Date, dayTime)
	}
	if appt.Status != entity.AppointmentStatusPending {
		t.Fatalf("status = %s, want pending", appt.Status)
	}
}

func TestPlanRejectsFullyBookedDoctor(t *testing.T) {
	doctor := plannerDoctor(2)
	dayTime := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	snapshot := &fakeSnapshot{
		doctors: []entity.Doctor{doctor},
		patients: []entity.Patient{
			plannedPatient(doctor.ID, dayTime, 1),
			plannedPatient(doctor.ID, dayTime, 2),
		},
	}

	_, err := newTestPlanner(t, snapshot, nil).plan(context.Background(), doctor.ID, "2024-05-01", uuid.Nil)
	if !errors.Is(err, ErrDoctorFullyBooked) {
		t.Fatalf("expected ErrDoctorFullyBooked, got %v", err)
	}
	// The rejection names the doctor and their limit.
	if !strings.Contains(err.Error(), doctor.FullName) || !strings.Contains(err.Error(), "2") {
		t.Fatalf("rejection message missing doctor name or limit: %q", err.Error())
	}
}

// Editing a booking excludes the patient from their own group: a
// fully-booked day where one slot belongs to the edited patient still
// accepts the move, and re-sequencing stays at the old position.
func TestPlanExcludesEditedPatient(t *testing.T) {
	doctor := plannerDoctor(3)
	dayTime := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	own := plannedPatient(doctor.ID, dayTime, 3)
	snapshot := &fakeSnapshot{
		doctors: []entity.Doctor{doctor},
		patients: []entity.Patient{
			plannedPatient(doctor.ID, dayTime, 1),
			plannedPatient(doctor.ID, dayTime, 2),
			own,
		},
	}

	appt, err := newTestPlanner(t, snapshot, nil).plan(context.Background(), doctor.ID, "2024-06-10", own.ID)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if appt.SequenceNumber != 3 {
		t.Fatalf("re-sequenced number = %d, want 3", appt.SequenceNumber)
	}
}

func TestPlanUnknownVersusUnbookableDoctor(t *testing.T) {
	unbookableID := uuid.New()
	users := &fakeUserRepo{users: map[uuid.UUID]*entity.User{
		unbookableID: {ID: unbookableID, RoleID: entity.RoleIDDoctor, FullName: "Dr. NoSpecialty"},
	}}
	snapshot := &fakeSnapshot{}

	planner := newTestPlanner(t, snapshot, users)

	if _, err := planner.plan(context.Background(), uuid.New(), "", uuid.Nil); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("unknown doctor: expected ErrDoctorNotFound, got %v", err)
	}
	if _, err := planner.plan(context.Background(), unbookableID, "", uuid.Nil); !errors.Is(err, ErrDoctorNotBookable) {
		t.Fatalf("unbookable doctor: expected ErrDoctorNotBookable, got %v", err)
	}
}

func TestPlanInvalidDate(t *testing.T) {
	doctor := plannerDoctor(0)
	snapshot := &fakeSnapshot{doctors: []entity.Doctor{doctor}}

	_, err := newTestPlanner(t, snapshot, nil).plan(context.Background(), doctor.ID, "01-05-2024", uuid.Nil)
	if !errors.Is(err, ErrInvalidAppointmentDate) {
		t.Fatalf("expected ErrInvalidAppointmentDate, got %v", err)
	}
}

func TestPlanUnlimitedDoctorNeverRejects(t *testing.T) {
	doctor := plannerDoctor(0)
	dayTime := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	patients := make([]entity.Patient, 0, 50)
	for i := 0; i < 50; i++ {
		patients = append(patients, plannedPatient(doctor.ID, dayTime, i+1))
	}
	snapshot := &fakeSnapshot{doctors: []entity.Doctor{doctor}, patients: patients}

	appt, err := newTestPlanner(t, snapshot, nil).plan(context.Background(), doctor.ID, "2024-05-01", uuid.Nil)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if appt.SequenceNumber != 51 {
		t.Fatalf("sequence = %d, want 51", appt.SequenceNumber)
	}
}
