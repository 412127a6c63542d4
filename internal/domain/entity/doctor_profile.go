package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpecialtyNone marks a doctor who has not been assigned a specialty yet.
// Such doctors are excluded from booking.
const SpecialtyNone = "None"

// DoctorProfile represents doctor-specific profile data.
// DailyCapacity is the maximum number of appointments the doctor accepts
// per calendar day; 0 means unlimited.
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  *string         `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	DailyCapacity   int             `gorm:"not null;default:0" json:"daily_capacity"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// HasSpecialty reports whether the doctor carries a real specialty and
// may therefore be offered for booking.
func (p *DoctorProfile) HasSpecialty() bool {
	return p.Specialization != nil && *p.Specialization != "" && *p.Specialization != SpecialtyNone
}
