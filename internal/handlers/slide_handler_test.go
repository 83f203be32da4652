package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/pet24-api/internal/models"
)

func validSlide() map[string]any {
	return map[string]any{
		"title":       "تخفیف ویژه",
		"description": "تا پایان هفته",
		"accent":      "#ff8800",
		"image":       "https://example.com/slide.jpg",
		"ctaLabel":    "خرید",
		"ctaLink":     "/shop",
	}
}

func TestSlides(t *testing.T) {
	app := newTestApp(t)
	admin := app.admin(t)

	w := app.do(t, http.MethodGet, "/api/slides", nil)
	require.Equal(t, http.StatusOK, w.Code)
	slides := decode[[]models.Slide](t, w)
	require.Len(t, slides, 3)
	assert.Equal(t, "slide-1", slides[0].ID)

	w = app.do(t, http.MethodPost, "/api/slides", validSlide())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodPost, "/api/slides", validSlide(), admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Slide](t, w)
	assert.Equal(t, 4, created.Order)

	w = app.do(t, http.MethodPut, "/api/slides/"+created.ID, map[string]any{"order": "0"}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[models.Slide](t, w).Order)

	w = app.do(t, http.MethodGet, "/api/slides", nil)
	assert.Equal(t, created.ID, decode[[]models.Slide](t, w)[0].ID)

	w = app.do(t, http.MethodDelete, "/api/slides/"+created.ID, nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "اسلاید حذف شد", decode[map[string]string](t, w)["message"])

	w = app.do(t, http.MethodGet, "/api/slides/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "اسلاید یافت نشد", errorOf(t, w))
}

func TestCreateSlide_Validation(t *testing.T) {
	app := newTestApp(t)

	body := validSlide()
	delete(body, "ctaLink")
	w := app.do(t, http.MethodPost, "/api/slides", body, app.admin(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "فیلد ctaLink الزامی است", errorOf(t, w))

	body = validSlide()
	body["order"] = 2
	w = app.do(t, http.MethodPost, "/api/slides", body, app.admin(t))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, decode[models.Slide](t, w).Order)
}

func TestUpdateSlide_RejectsBlankRequiredFields(t *testing.T) {
	app := newTestApp(t)
	admin := app.admin(t)

	for _, name := range []string{"title", "description", "accent", "image", "ctaLabel", "ctaLink"} {
		t.Run(name, func(t *testing.T) {
			w := app.do(t, http.MethodPut, "/api/slides/slide-1", map[string]any{name: " "}, admin)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "فیلد "+name+" الزامی است", errorOf(t, w))
		})
	}

	w := app.do(t, http.MethodGet, "/api/slides/slide-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "هر آنچه دوست پشمالوی شما نیاز دارد", decode[models.Slide](t, w).Title)
}
