package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hospital-management-backend/internal/domain/entity"
	"hospital-management-backend/internal/domain/repository"
	"hospital-management-backend/internal/scheduling"
	"hospital-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrDoctorNotBookable      = errors.New("doctor has no specialty and cannot take appointments")
	ErrDoctorFullyBooked      = errors.New("doctor has reached the daily appointment limit")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date format, use YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// bookingPlanner turns a doctor/date selection into a persistable
// appointment value: it gates the selection against the doctor's daily
// capacity and allocates the next sequence number, both computed over
// the snapshot. Shared by the registration and reception flows; the
// reception flow passes the edited patient's id so their current
// booking does not count against itself.
//
// Capacity and sequence are checked against the snapshot as it stands
// at planning time; there is no cross-terminal atomicity (see DESIGN.md).
type bookingPlanner struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
	snapshot service.Snapshot
}

func (p *bookingPlanner) plan(ctx context.Context, doctorID uuid.UUID, dateStr string, excludePatientID uuid.UUID) (*entity.Appointment, error) {
	targetDate, err := parseTargetDate(dateStr)
	if err != nil {
		return nil, err
	}

	doctors, err := p.snapshot.Doctors(ctx)
	if err != nil {
		p.log.Warnf("Failed to load doctor snapshot: %+v", err)
		return nil, err
	}

	var doctor *entity.Doctor
	for i := range doctors {
		if doctors[i].ID == doctorID {
			doctor = &doctors[i]
			break
		}
	}
	if doctor == nil {
		// The snapshot only carries bookable doctors; look the account up
		// to tell an unknown id apart from a doctor without a specialty.
		user, err := p.userRepo.FindByID(p.db.WithContext(ctx), doctorID)
		if err != nil {
			return nil, err
		}
		if user == nil || user.RoleID != entity.RoleIDDoctor {
			return nil, ErrDoctorNotFound
		}
		return nil, ErrDoctorNotBookable
	}

	patients, err := p.snapshot.Patients(ctx)
	if err != nil {
		p.log.Warnf("Failed to load patient snapshot: %+v", err)
		return nil, err
	}

	booked := scheduling.CountAppointmentsOn(patients, doctorID, targetDate, excludePatientID)
	eval := scheduling.EvaluateCapacity(*doctor, booked)
	if !eval.IsAvailable {
		return nil, fmt.Errorf("%w: %s accepts at most %d appointments per day",
			ErrDoctorFullyBooked, doctor.FullName, doctor.DailyCapacity)
	}

	return &entity.Appointment{
		DoctorID:       doctor.ID,
		DoctorName:     doctor.FullName,
		Fee:            doctor.ConsultationFee,
		Date:           scheduling.CalendarDay(targetDate),
		SequenceNumber: scheduling.NextSequenceNumber(doctorID, targetDate, patients, excludePatientID),
		Status:         entity.AppointmentStatusPending,
		BookedAt:       time.Now().UTC(),
	}, nil
}

// parseTargetDate parses a YYYY-MM-DD day, defaulting to today.
func parseTargetDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, ErrInvalidAppointmentDate
	}
	return parsed, nil
}

func isDuplicateKeyError(err error, constraintHint string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") && strings.Contains(msg, strings.ToLower(constraintHint))
}
