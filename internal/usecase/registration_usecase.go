package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-backend/internal/converter"
	"hospital-management-backend/internal/delivery/dto"
	"hospital-management-backend/internal/domain/entity"
	"hospital-management-backend/internal/domain/repository"
	"hospital-management-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicalRecordNumberExists = errors.New("medical record number already exists")
	ErrInvalidDateOfBirth        = errors.New("invalid date of birth format, use YYYY-MM-DD")
)

type RegistrationUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
}

type registrationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	snapshot     service.Snapshot
	auditService service.AuditService
	planner      *bookingPlanner
}

func NewRegistrationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	snapshot service.Snapshot,
	auditService service.AuditService,
) RegistrationUsecase {
	return &registrationUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		snapshot:     snapshot,
		auditService: auditService,
		planner:      &bookingPlanner{db: db, log: log, userRepo: userRepo, snapshot: snapshot},
	}
}

// RegisterPatient creates a patient record, with an initial appointment
// when a doctor was selected on the form. An empty doctor id is the
// valid "no appointment" state, not an error.
func (u *registrationUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	patient := &entity.Patient{
		MedicalRecordNumber: req.MedicalRecordNumber,
		FullName:            req.FullName,
		PhoneNumber:         req.PhoneNumber,
		DateOfBirth:         dateOfBirth,
		Gender:              req.Gender,
		Address:             req.Address,
	}

	if req.DoctorID != "" {
		doctorID, err := uuid.Parse(req.DoctorID)
		if err != nil {
			return nil, ErrDoctorNotFound
		}

		appointment, err := u.planner.plan(ctx, doctorID, req.AppointmentDate, uuid.Nil)
		if err != nil {
			return nil, err
		}
		patient.Appointment = appointment
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		if isDuplicateKeyError(err, "medical_record_number") {
			return nil, ErrMedicalRecordNumberExists
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionPatientRegister, "patient", patient.ID.String(), converter.PatientToResponse(patient)); err != nil {
		// Don't fail the transaction for audit log errors
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshot.InvalidatePatients(ctx)

	if patient.HasAppointment() {
		u.log.Infof("Patient registered with appointment: patient=%s, doctor=%s, seq=%d",
			patient.ID, patient.Appointment.DoctorID, patient.Appointment.SequenceNumber)
	} else {
		u.log.Infof("Patient registered: patient=%s", patient.ID)
	}

	return converter.PatientToResponse(patient), nil
}
