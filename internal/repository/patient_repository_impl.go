package repository

import (
	"errors"
	"time"

	"hospital-management-backend/internal/domain/entity"
	domainRepo "hospital-management-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Order("created_at ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindPage(db *gorm.DB, offset, limit int) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	if err := db.Model(&entity.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

// SetAppointment replaces the embedded appointment columns in place.
// A nil appointment clears the booking back to the zero state (empty
// doctor id means "no appointment"). Returns affected rows so callers
// can detect a missing patient.
func (r *patientRepository) SetAppointment(db *gorm.DB, id uuid.UUID, appointment *entity.Appointment) (int64, error) {
	values := map[string]interface{}{
		"appointment_doctor_id":       uuid.Nil,
		"appointment_doctor_name":     "",
		"appointment_fee":             decimal.Zero,
		"appointment_date":            time.Time{},
		"appointment_sequence_number": 0,
		"appointment_status":          "",
		"appointment_booked_at":       time.Time{},
	}
	if appointment != nil {
		values["appointment_doctor_id"] = appointment.DoctorID
		values["appointment_doctor_name"] = appointment.DoctorName
		values["appointment_fee"] = appointment.Fee
		values["appointment_date"] = appointment.Date
		values["appointment_sequence_number"] = appointment.SequenceNumber
		values["appointment_status"] = appointment.Status
		values["appointment_booked_at"] = appointment.BookedAt
	}

	result := db.Model(&entity.Patient{}).Where("id = ?", id).Updates(values)
	return result.RowsAffected, result.Error
}
