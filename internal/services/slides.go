package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/storage"
)

const msgSlideNotFound = "اسلاید یافت نشد"

func SlideCollection() storage.Collection[models.Slide] {
	return storage.Collection[models.Slide]{Name: "slides", Prefix: "slide", Seed: defaultSlides}
}

type SlideService struct {
	repo *storage.Repository[models.Slide]
	log  *zap.Logger
}

func NewSlideService(repo *storage.Repository[models.Slide], log *zap.Logger) *SlideService {
	return &SlideService{repo: repo, log: log.Named("slides")}
}

// List returns slides by ascending order, oldest first among equal orders.
func (s *SlideService) List(ctx context.Context) ([]models.Slide, error) {
	res, err := s.repo.List(ctx, storage.Query[models.Slide]{
		Less: func(a, b models.Slide) bool {
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return a.CreatedAt.Before(b.CreatedAt)
		},
	})
	return unwrap(s.log, "list", res, err)
}

func (s *SlideService) Get(ctx context.Context, id string) (models.Slide, error) {
	res, err := s.repo.Get(ctx, id)
	slide, err := unwrap(s.log, "get", res, err)
	if err != nil {
		return models.Slide{}, err
	}
	if slide == nil {
		return models.Slide{}, apperrors.NotFound(msgSlideNotFound)
	}
	return *slide, nil
}

// Create stores the slide. A nil order places it after the current slides.
func (s *SlideService) Create(ctx context.Context, slide models.Slide, order *int) (models.Slide, error) {
	if order != nil {
		slide.Order = *order
	} else {
		existing, err := s.List(ctx)
		if err != nil {
			return models.Slide{}, err
		}
		slide.Order = len(existing) + 1
	}

	res, err := s.repo.Create(ctx, slide)
	created, err := unwrap(s.log, "create", res, err)
	if err != nil {
		return models.Slide{}, err
	}
	s.log.Info("Slide created", zap.String("id", created.ID), zap.Int("order", created.Order))
	return created, nil
}

func (s *SlideService) Update(ctx context.Context, id string, patch models.SlidePatch) (models.Slide, error) {
	res, err := s.repo.Update(ctx, id, patch.Apply)
	updated, err := unwrap(s.log, "update", res, err)
	if err != nil {
		return models.Slide{}, err
	}
	if updated == nil {
		return models.Slide{}, apperrors.NotFound(msgSlideNotFound)
	}
	return *updated, nil
}

func (s *SlideService) Delete(ctx context.Context, id string) error {
	res, err := s.repo.Delete(ctx, id)
	deleted, err := unwrap(s.log, "delete", res, err)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound(msgSlideNotFound)
	}
	return nil
}
