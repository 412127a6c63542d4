package usecase

import (
	"context"
	"errors"

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
	ErrPatientNotFound          = errors.New("patient not found")
	ErrNoAppointment            = errors.New("patient has no appointment")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

type ReceptionUsecase interface {
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, page, limit int) (*dto.PatientListResponse, error)
	UpdateAppointment(ctx context.Context, patientID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.PatientResponse, error)
	ClearAppointment(ctx context.Context, patientID uuid.UUID) error
	UpdateAppointmentStatus(ctx context.Context, patientID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.PatientResponse, error)
}

type receptionUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	snapshot     service.Snapshot
	auditService service.AuditService
	planner      *bookingPlanner
}

func NewReceptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	snapshot service.Snapshot,
	auditService service.AuditService,
) ReceptionUsecase {
	return &receptionUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		snapshot:     snapshot,
		auditService: auditService,
		planner:      &bookingPlanner{db: db, log: log, userRepo: userRepo, snapshot: snapshot},
	}
}

func (u *receptionUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *receptionUsecase) ListPatients(ctx context.Context, page, limit int) (*dto.PatientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	patients, total, err := u.patientRepo.FindPage(u.db.WithContext(ctx), (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

// UpdateAppointment books or moves a patient's appointment. Moving to a
// different doctor or day recomputes the sequence number with the
// patient excluded from their own group, so the old booking does not
// count against itself.
func (u *receptionUsecase) UpdateAppointment(ctx context.Context, patientID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	appointment, err := u.planner.plan(ctx, doctorID, req.Date, patientID)
	if err != nil {
		return nil, err
	}

	oldAppointment := converter.AppointmentToResponse(patient)
	action := entity.AuditActionAppointmentBook
	if patient.HasAppointment() {
		action = entity.AuditActionAppointmentReassign
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.patientRepo.SetAppointment(tx, patientID, appointment)
	if err != nil {
		u.log.Warnf("Failed to set appointment for patient %s: %+v", patientID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPatientNotFound
	}

	patient.Appointment = appointment

	if err := u.auditService.LogUpdate(ctx, tx, nil, action, "patient", patientID.String(), oldAppointment, converter.AppointmentToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshot.InvalidatePatients(ctx)

	u.log.Infof("Appointment set: patient=%s, doctor=%s, date=%s, seq=%d",
		patientID, appointment.DoctorID, appointment.Date.Format(dateLayout), appointment.SequenceNumber)

	return converter.PatientToResponse(patient), nil
}

// ClearAppointment resets the patient back to the "no appointment"
// state. Historical appointments have no life of their own outside the
// patient record, so this is the only destruction path.
func (u *receptionUsecase) ClearAppointment(ctx context.Context, patientID uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	if !patient.HasAppointment() {
		return ErrNoAppointment
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.patientRepo.SetAppointment(tx, patientID, nil); err != nil {
		u.log.Warnf("Failed to clear appointment for patient %s: %+v", patientID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, nil, entity.AuditActionAppointmentClear, "patient", patientID.String(), converter.AppointmentToResponse(patient)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.snapshot.InvalidatePatients(ctx)

	u.log.Infof("Appointment cleared: patient=%s", patientID)
	return nil
}

// UpdateAppointmentStatus moves the appointment between pending, come,
// completed and cancelled. Transitions are not constrained; only the
// initial doctor/date assignment is capacity-gated.
func (u *receptionUsecase) UpdateAppointmentStatus(ctx context.Context, patientID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.PatientResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidAppointmentStatus
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if !patient.HasAppointment() {
		return nil, ErrNoAppointment
	}

	oldStatus := patient.Appointment.Status
	updated := *patient.Appointment
	updated.Status = status

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.patientRepo.SetAppointment(tx, patientID, &updated); err != nil {
		u.log.Warnf("Failed to update appointment status for patient %s: %+v", patientID, err)
		return nil, err
	}

	patient.Appointment = &updated

	if err := u.auditService.LogUpdate(ctx, tx, nil, entity.AuditActionAppointmentStatus, "patient", patientID.String(), string(oldStatus), string(status)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.snapshot.InvalidatePatients(ctx)

	return converter.PatientToResponse(patient), nil
}
