package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized staff directory table. Reception,
// doctor, pharmacy and admin accounts all live here; doctors carry an
// additional DoctorProfile row.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role          Role           `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DoctorProfile *DoctorProfile `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// AsDoctor flattens a doctor user and its profile into the bookable
// directory view. Returns false for non-doctor users, inactive accounts
// and doctors without a real specialty.
func (u User) AsDoctor() (Doctor, bool) {
	if u.RoleID != RoleIDDoctor || u.DoctorProfile == nil {
		return Doctor{}, false
	}
	if u.IsActive != nil && !*u.IsActive {
		return Doctor{}, false
	}
	if !u.DoctorProfile.HasSpecialty() {
		return Doctor{}, false
	}

	return Doctor{
		ID:              u.ID,
		FullName:        u.FullName,
		Specialty:       *u.DoctorProfile.Specialization,
		DailyCapacity:   u.DoctorProfile.DailyCapacity,
		ConsultationFee: u.DoctorProfile.ConsultationFee,
	}, true
}
