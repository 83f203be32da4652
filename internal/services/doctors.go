package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/storage"
)

const msgDoctorNotFound = "پزشک یافت نشد"

func DoctorCollection() storage.Collection[models.Doctor] {
	return storage.Collection[models.Doctor]{Name: "doctors", Prefix: "doc", Seed: defaultDoctors}
}

type DoctorService struct {
	repo  *storage.Repository[models.Doctor]
	media *MediaResolver
	log   *zap.Logger
}

func NewDoctorService(repo *storage.Repository[models.Doctor], media *MediaResolver, log *zap.Logger) *DoctorService {
	return &DoctorService{repo: repo, media: media, log: log.Named("doctors")}
}

// List returns the doctors matching every non-empty filter field, newest
// first, with photos filled in.
func (s *DoctorService) List(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, error) {
	res, err := s.repo.List(ctx, storage.Query[models.Doctor]{
		Match: func(d models.Doctor) bool {
			return (filter.Province == "" || d.Province == filter.Province) &&
				(filter.City == "" || d.City == filter.City)
		},
		Less:    newestFirst[models.Doctor],
		Reverse: true,
	})
	doctors, err := unwrap(s.log, "list", res, err)
	if err != nil {
		return nil, err
	}
	return s.media.EnsureDoctorPhotos(doctors), nil
}

func (s *DoctorService) Get(ctx context.Context, id string) (models.Doctor, error) {
	res, err := s.repo.Get(ctx, id)
	doctor, err := unwrap(s.log, "get", res, err)
	if err != nil {
		return models.Doctor{}, err
	}
	if doctor == nil {
		return models.Doctor{}, apperrors.NotFound(msgDoctorNotFound)
	}
	return s.withPhoto(*doctor), nil
}

func (s *DoctorService) Create(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	res, err := s.repo.Create(ctx, doctor)
	created, err := unwrap(s.log, "create", res, err)
	if err != nil {
		return models.Doctor{}, err
	}
	s.log.Info("Doctor created", zap.String("id", created.ID))
	return s.withPhoto(created), nil
}

func (s *DoctorService) Update(ctx context.Context, id string, patch models.DoctorPatch) (models.Doctor, error) {
	res, err := s.repo.Update(ctx, id, patch.Apply)
	updated, err := unwrap(s.log, "update", res, err)
	if err != nil {
		return models.Doctor{}, err
	}
	if updated == nil {
		return models.Doctor{}, apperrors.NotFound(msgDoctorNotFound)
	}
	return s.withPhoto(*updated), nil
}

func (s *DoctorService) Delete(ctx context.Context, id string) error {
	res, err := s.repo.Delete(ctx, id)
	deleted, err := unwrap(s.log, "delete", res, err)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound(msgDoctorNotFound)
	}
	s.log.Info("Doctor deleted", zap.String("id", id))
	return nil
}

func (s *DoctorService) withPhoto(d models.Doctor) models.Doctor {
	return s.media.EnsureDoctorPhotos([]models.Doctor{d})[0]
}

type dated interface {
	Meta() models.Base
}

// newestFirst orders by createdAt descending. Pair it with Query.Reverse so
// records stamped in the same millisecond list latest first.
func newestFirst[T dated](a, b T) bool {
	return a.Meta().CreatedAt.After(b.Meta().CreatedAt)
}
