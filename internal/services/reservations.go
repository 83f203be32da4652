package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/storage"
)

func ReservationCollection() storage.Collection[models.Reservation] {
	return storage.Collection[models.Reservation]{Name: "reservations", Prefix: "res"}
}

type doctorLookup interface {
	Get(ctx context.Context, id string) (models.Doctor, error)
}

// ReservationRequest is what a patient submits for a doctor.
type ReservationRequest struct {
	DoctorID      string
	PatientName   string
	Phone         string
	PreferredDate string
	PreferredTime string
	Note          string
}

type ReservationService struct {
	repo     *storage.Repository[models.Reservation]
	doctors  doctorLookup
	notifier Notifier
	log      *zap.Logger
}

func NewReservationService(repo *storage.Repository[models.Reservation], doctors doctorLookup, notifier Notifier, log *zap.Logger) *ReservationService {
	return &ReservationService{repo: repo, doctors: doctors, notifier: notifier, log: log.Named("reservations")}
}

// List returns reservations newest first, optionally for one doctor.
func (s *ReservationService) List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	res, err := s.repo.List(ctx, storage.Query[models.Reservation]{
		Match: func(r models.Reservation) bool {
			return filter.DoctorID == "" || r.DoctorID == filter.DoctorID
		},
		Less:    newestFirst[models.Reservation],
		Reverse: true,
	})
	return unwrap(s.log, "list", res, err)
}

// Create records a pending reservation for an existing doctor and notifies
// the patient.
func (s *ReservationService) Create(ctx context.Context, req ReservationRequest) (models.Reservation, error) {
	doctor, err := s.doctors.Get(ctx, req.DoctorID)
	if err != nil {
		return models.Reservation{}, err
	}

	res, err := s.repo.Create(ctx, models.Reservation{
		DoctorID:      doctor.ID,
		DoctorName:    doctor.Name,
		PatientName:   req.PatientName,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Note:          req.Note,
		Status:        models.ReservationPending,
	})
	created, err := unwrap(s.log, "create", res, err)
	if err != nil {
		return models.Reservation{}, err
	}

	s.log.Info("Reservation received",
		zap.String("id", created.ID),
		zap.String("doctor_id", created.DoctorID),
		zap.String("preferred_date", created.PreferredDate),
	)
	if s.notifier != nil {
		s.notifier.ReservationReceived(created)
	}
	return created, nil
}
