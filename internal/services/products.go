package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
	"github.com/harentsoaR/pet24-api/internal/storage"
)

const msgProductNotFound = "محصول یافت نشد"

func ProductCollection() storage.Collection[models.Product] {
	return storage.Collection[models.Product]{Name: "products", Prefix: "prod", Seed: defaultProducts}
}

type ProductService struct {
	repo  *storage.Repository[models.Product]
	media *MediaResolver
	log   *zap.Logger
}

func NewProductService(repo *storage.Repository[models.Product], media *MediaResolver, log *zap.Logger) *ProductService {
	return &ProductService{repo: repo, media: media, log: log.Named("products")}
}

func (s *ProductService) Categories() []models.ProductCategory {
	return models.ProductCategories
}

// List filters by category and by a case-insensitive search over name,
// description and brand. Both filters must match.
func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	res, err := s.repo.List(ctx, storage.Query[models.Product]{
		Match: func(p models.Product) bool {
			if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
				return false
			}
			if search == "" {
				return true
			}
			return strings.Contains(strings.ToLower(p.Name), search) ||
				strings.Contains(strings.ToLower(p.Description), search) ||
				strings.Contains(strings.ToLower(p.Brand), search)
		},
		Less:    newestFirst[models.Product],
		Reverse: true,
	})
	products, err := unwrap(s.log, "list", res, err)
	if err != nil {
		return nil, err
	}
	return s.media.EnsureProductImages(products), nil
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	res, err := s.repo.Get(ctx, id)
	product, err := unwrap(s.log, "get", res, err)
	if err != nil {
		return models.Product{}, err
	}
	if product == nil {
		return models.Product{}, apperrors.NotFound(msgProductNotFound)
	}
	return s.withImage(*product), nil
}

func (s *ProductService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	res, err := s.repo.Create(ctx, product)
	created, err := unwrap(s.log, "create", res, err)
	if err != nil {
		return models.Product{}, err
	}
	s.log.Info("Product created", zap.String("id", created.ID), zap.String("category", string(created.CategoryID)))
	return s.withImage(created), nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	res, err := s.repo.Update(ctx, id, patch.Apply)
	updated, err := unwrap(s.log, "update", res, err)
	if err != nil {
		return models.Product{}, err
	}
	if updated == nil {
		return models.Product{}, apperrors.NotFound(msgProductNotFound)
	}
	return s.withImage(*updated), nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	res, err := s.repo.Delete(ctx, id)
	deleted, err := unwrap(s.log, "delete", res, err)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound(msgProductNotFound)
	}
	s.log.Info("Product deleted", zap.String("id", id))
	return nil
}

func (s *ProductService) withImage(p models.Product) models.Product {
	return s.media.EnsureProductImages([]models.Product{p})[0]
}
