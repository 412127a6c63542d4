package main

import (
	"fmt"
	"log"
	"time"

	"hospital-management-backend/config"
	"hospital-management-backend/internal/domain/entity"
	"hospital-management-backend/internal/infrastructure/database"
	"hospital-management-backend/internal/scheduling"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	doctorCount  = 12
	patientCount = 200
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	doctors, err := seedDoctors(db)
	if err != nil {
		log.Fatalf("seed doctors: %v", err)
	}
	if err := seedPatients(db, doctors); err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	log.Println("seed complete")
}

func seedDoctors(db *gorm.DB) ([]entity.Doctor, error) {
	log.Printf("seeding %d doctors", doctorCount)

	specialties := []string{
		"Dermatology",
		"Cardiology",
		"General Practice",
		"Orthopedics",
		"Endocrinology",
		"Neurology",
		"Pediatrics",
		"Psychiatry",
	}

	var doctors []entity.Doctor

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < doctorCount; i++ {
			active := true
			user := entity.User{
				ID:       uuid.New(),
				RoleID:   entity.RoleIDDoctor,
				Email:    gofakeit.Email(),
				FullName: "Dr. " + gofakeit.Name(),
				IsActive: &active,
			}

			profile := entity.DoctorProfile{
				UserID:          user.ID,
				DailyCapacity:   gofakeit.Number(0, 8),
				ConsultationFee: decimal.NewFromInt(int64(gofakeit.Number(10, 60) * 5)),
			}

			// A couple of doctors without a real specialty stay
			// out of the bookable directory.
			switch {
			case i == doctorCount-1:
				none := entity.SpecialtyNone
				profile.Specialization = &none
			case i == doctorCount-2:
				profile.Specialization = nil
			default:
				spec := specialties[gofakeit.Number(0, len(specialties)-1)]
				profile.Specialization = &spec
			}

			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}

			user.DoctorProfile = &profile
			if doctor, ok := user.AsDoctor(); ok {
				doctors = append(doctors, doctor)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("doctors seeded, %d bookable", len(doctors))
	return doctors, nil
}

func seedPatients(db *gorm.DB, doctors []entity.Doctor) error {
	log.Printf("seeding %d patients", patientCount)

	today := scheduling.CalendarDay(time.Now())
	var booked []entity.Patient

	return db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < patientCount; i++ {
			gender := entity.GenderFemale
			if gofakeit.Bool() {
				gender = entity.GenderMale
			}

			patient := entity.Patient{
				ID:                  uuid.New(),
				MedicalRecordNumber: fmt.Sprintf("MRN-%06d", i+1),
				FullName:            gofakeit.Name(),
				PhoneNumber:         gofakeit.Phone(),
				DateOfBirth:         gofakeit.DateRange(time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2015, 12, 31, 0, 0, 0, 0, time.UTC)),
				Gender:              gender,
				Address:             gofakeit.Address().Address,
			}

			// Roughly a third of patients arrive with a booking for
			// today, spread across the bookable doctors.
			if len(doctors) > 0 && gofakeit.Number(0, 2) == 0 {
				doctor := doctors[gofakeit.Number(0, len(doctors)-1)]
				count := scheduling.CountAppointmentsOn(booked, doctor.ID, today, uuid.Nil)
				if eval := scheduling.EvaluateCapacity(doctor, count); eval.IsAvailable {
					patient.Appointment = &entity.Appointment{
						DoctorID:       doctor.ID,
						DoctorName:     doctor.FullName,
						Fee:            doctor.ConsultationFee,
						Date:           today,
						SequenceNumber: scheduling.NextSequenceNumber(doctor.ID, today, booked, uuid.Nil),
						Status:         entity.AppointmentStatusPending,
						BookedAt:       time.Now().UTC(),
					}
					booked = append(booked, patient)
				}
			}

			if err := tx.Create(&patient).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
