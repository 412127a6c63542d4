package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor is the flattened directory view of a bookable doctor, built
// from a User and its DoctorProfile. The scheduling package works over
// this view rather than the raw tables.
type Doctor struct {
	ID              uuid.UUID       `json:"id"`
	FullName        string          `json:"full_name"`
	Specialty       string          `json:"specialty"`
	DailyCapacity   int             `json:"daily_capacity"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}
