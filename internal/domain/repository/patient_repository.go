package repository

import (
	"hospital-management-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindPage(db *gorm.DB, offset, limit int) ([]entity.Patient, int64, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	SetAppointment(db *gorm.DB, id uuid.UUID, appointment *entity.Appointment) (int64, error)
}
