package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hospital-management-backend/internal/domain/entity"
	"hospital-management-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Redis keys for the snapshot cache
const (
	SnapshotPatientsKey = "snapshot:patients"
	SnapshotDoctorsKey  = "snapshot:doctors"
)

// Snapshot serves the last-known lists of patients and bookable doctors.
// Values come from a cache refreshed from the database, so reads may be
// slightly stale until a writer invalidates them; the scheduling core is
// deliberately computed over this snapshot (see DESIGN.md on the
// stale-read race).
type Snapshot interface {
	Patients(ctx context.Context) ([]entity.Patient, error)
	Doctors(ctx context.Context) ([]entity.Doctor, error)
	InvalidatePatients(ctx context.Context)
	InvalidateDoctors(ctx context.Context)
}

// SnapshotService implements Snapshot on top of Redis with Postgres as
// the source of truth. Cache entries carry a TTL so a missed
// invalidation heals itself; Redis outages degrade to direct database
// reads instead of failing the request.
type SnapshotService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

func NewSnapshotService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	ttl time.Duration,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) *SnapshotService {
	return &SnapshotService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

func (s *SnapshotService) Patients(ctx context.Context) ([]entity.Patient, error) {
	var cached []entity.Patient
	if s.readCache(ctx, SnapshotPatientsKey, &cached) {
		return cached, nil
	}

	patients, err := s.patientRepo.FindAll(s.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, SnapshotPatientsKey, patients)
	return patients, nil
}

func (s *SnapshotService) Doctors(ctx context.Context) ([]entity.Doctor, error) {
	var cached []entity.Doctor
	if s.readCache(ctx, SnapshotDoctorsKey, &cached) {
		return cached, nil
	}

	users, err := s.userRepo.FindDoctors(s.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	doctors := make([]entity.Doctor, 0, len(users))
	for _, user := range users {
		if doctor, ok := user.AsDoctor(); ok {
			doctors = append(doctors, doctor)
		}
	}

	s.writeCache(ctx, SnapshotDoctorsKey, doctors)
	return doctors, nil
}

func (s *SnapshotService) InvalidatePatients(ctx context.Context) {
	s.invalidate(ctx, SnapshotPatientsKey)
}

func (s *SnapshotService) InvalidateDoctors(ctx context.Context) {
	s.invalidate(ctx, SnapshotDoctorsKey)
}

func (s *SnapshotService) readCache(ctx context.Context, key string, out interface{}) bool {
	payload, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Snapshot cache read failed for %s: %+v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		s.log.Warnf("Snapshot cache payload corrupt for %s, falling back to DB: %+v", key, err)
		return false
	}
	return true
}

func (s *SnapshotService) writeCache(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warnf("Failed to marshal snapshot for %s: %+v", key, err)
		return
	}
	if err := s.redisClient.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Snapshot cache write failed for %s (non-fatal): %+v", key, err)
	}
}

func (s *SnapshotService) invalidate(ctx context.Context, key string) {
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		// TTL expiry will catch up if the delete is lost.
		s.log.Warnf("Snapshot invalidation failed for %s (non-fatal): %+v", key, err)
	}
}
