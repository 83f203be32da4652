package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/models"
)

func newProductService(t *testing.T) *ProductService {
	return NewProductService(newRepo(t, ProductCollection()), NewMediaResolver(), zap.NewNop())
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestProductService_ListFilters(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(t)

	tests := []struct {
		name   string
		filter models.ProductFilter
		want   []string
	}{
		{"all", models.ProductFilter{}, []string{"p-1", "p-2", "p-3", "p-4", "p-5", "p-6", "p-7", "p-8"}},
		{"category", models.ProductFilter{CategoryID: models.CategoryDog}, []string{"p-2", "p-5"}},
		{"search by brand is case insensitive", models.ProductFilter{Search: "  royal "}, []string{"p-1"}},
		{"category and search", models.ProductFilter{CategoryID: models.CategoryCat, Search: "LED"}, []string{"p-6"}},
		{"category and search must both match", models.ProductFilter{CategoryID: models.CategoryDog, Search: "LED"}, []string{}},
		{"search in description", models.ProductFilter{Search: "خرگوش"}, []string{"p-4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestProductService_ListFillsImages(t *testing.T) {
	products, err := newProductService(t).List(context.Background(), models.ProductFilter{})
	require.NoError(t, err)
	for _, p := range products {
		assert.Contains(t, p.Image, "https://api.dicebear.com/7.x/shapes/png?seed=")
	}
}

func TestProductService_StockUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(t)

	before, err := svc.Get(ctx, "p-1")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "p-1", models.ProductPatch{Stock: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, before.Price, updated.Price)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Highlights, updated.Highlights)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))

	got, err := svc.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	other, err := svc.Get(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, 45, other.Stock)
}

func TestProductService_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(t)

	created, err := svc.Create(ctx, models.Product{
		Name: "Bird Seed", CategoryID: models.CategoryBird, Description: "seed mix", Price: 1000, Stock: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.dicebear.com/7.x/shapes/png?seed=Bird%20Seed&size=512", created.Image)

	list, err := svc.List(ctx, models.ProductFilter{CategoryID: models.CategoryBird})
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID, "p-3"}, ids(list))

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
	assert.Equal(t, "محصول یافت نشد", apperrors.MessageOf(err, ""))
}

func TestProductService_Categories(t *testing.T) {
	cats := newProductService(t).Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, models.CategoryCat, cats[0].ID)
}
