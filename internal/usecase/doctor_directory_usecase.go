package usecase

import (
	"context"

	"hospital-management-backend/internal/converter"
	"hospital-management-backend/internal/delivery/dto"
	"hospital-management-backend/internal/scheduling"
	"hospital-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type DoctorDirectoryUsecase interface {
	ListAvailability(ctx context.Context, dateStr string) (*dto.DoctorAvailabilityListResponse, error)
	ListQueue(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.DoctorQueueResponse, error)
}

// doctorDirectoryUsecase reads only from the snapshot; it holds no
// database handle of its own.
type doctorDirectoryUsecase struct {
	log      *logrus.Logger
	snapshot service.Snapshot
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, snapshot service.Snapshot) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:      log,
		snapshot: snapshot,
	}
}

// ListAvailability returns the bookable doctors annotated with their
// booking load for the requested day (today when the date is empty),
// in directory order.
func (u *doctorDirectoryUsecase) ListAvailability(ctx context.Context, dateStr string) (*dto.DoctorAvailabilityListResponse, error) {
	targetDate, err := parseTargetDate(dateStr)
	if err != nil {
		return nil, err
	}

	doctors, err := u.snapshot.Doctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctor snapshot: %+v", err)
		return nil, err
	}

	patients, err := u.snapshot.Patients(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patient snapshot: %+v", err)
		return nil, err
	}

	annotated := scheduling.ProjectAvailability(doctors, patients, targetDate)

	return &dto.DoctorAvailabilityListResponse{
		Date:    scheduling.CalendarDay(targetDate).Format(dateLayout),
		Doctors: converter.AvailabilityToResponses(annotated),
		Total:   len(annotated),
	}, nil
}

// ListQueue returns the day's patients for one doctor in sequence
// order, feeding the doctor dashboard.
func (u *doctorDirectoryUsecase) ListQueue(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.DoctorQueueResponse, error) {
	targetDate, err := parseTargetDate(dateStr)
	if err != nil {
		return nil, err
	}

	doctors, err := u.snapshot.Doctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctor snapshot: %+v", err)
		return nil, err
	}

	doctorName := ""
	found := false
	for _, doctor := range doctors {
		if doctor.ID == doctorID {
			doctorName = doctor.FullName
			found = true
			break
		}
	}
	if !found {
		return nil, ErrDoctorNotFound
	}

	patients, err := u.snapshot.Patients(ctx)
	if err != nil {
		u.log.Warnf("Failed to load patient snapshot: %+v", err)
		return nil, err
	}

	entries := scheduling.DayQueue(doctorID, targetDate, patients)

	return &dto.DoctorQueueResponse{
		DoctorID:   doctorID,
		DoctorName: doctorName,
		Date:       scheduling.CalendarDay(targetDate).Format(dateLayout),
		Entries:    converter.QueueToResponses(entries),
		Total:      len(entries),
	}, nil
}
