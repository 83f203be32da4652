package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/pet24-api/internal/models"
)

type slideRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Accent      *string `json:"accent"`
	Image       *string `json:"image"`
	CTALabel    *string `json:"ctaLabel"`
	CTALink     *string `json:"ctaLink"`
	Order       number  `json:"order"`
}

func (r slideRequest) requiredFields() []field {
	return []field{
		{"title", r.Title},
		{"description", r.Description},
		{"accent", r.Accent},
		{"image", r.Image},
		{"ctaLabel", r.CTALabel},
		{"ctaLink", r.CTALink},
	}
}

// order is nil when absent or not a number.
func (r slideRequest) order() *int {
	if p := r.Order.Ptr(); p != nil {
		o := int(*p)
		return &o
	}
	return nil
}

func (h *Handler) GetSlides(c *gin.Context) {
	slides, err := h.Slides.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, slides)
}

func (h *Handler) GetSlide(c *gin.Context) {
	slide, err := h.Slides.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *Handler) CreateSlide(c *gin.Context) {
	var req slideRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if name := missingField(req.requiredFields()...); name != "" {
		badRequest(c, requiredMessage(name))
		return
	}

	slide, err := h.Slides.Create(c.Request.Context(), models.Slide{
		Title:       trimmed(req.Title),
		Description: trimmed(req.Description),
		Accent:      trimmed(req.Accent),
		Image:       trimmed(req.Image),
		CTALabel:    trimmed(req.CTALabel),
		CTALink:     trimmed(req.CTALink),
	}, req.order())
	if err != nil {
		h.respondError(c, err, "خطا در ایجاد اسلاید")
		return
	}
	c.JSON(http.StatusCreated, slide)
}

func (h *Handler) UpdateSlide(c *gin.Context) {
	var req slideRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if name := blankField(req.requiredFields()...); name != "" {
		badRequest(c, requiredMessage(name))
		return
	}

	slide, err := h.Slides.Update(c.Request.Context(), c.Param("id"), models.SlidePatch{
		Title:       trimmedPtr(req.Title),
		Description: trimmedPtr(req.Description),
		Accent:      trimmedPtr(req.Accent),
		Image:       trimmedPtr(req.Image),
		CTALabel:    trimmedPtr(req.CTALabel),
		CTALink:     trimmedPtr(req.CTALink),
		Order:       req.order(),
	})
	if err != nil {
		h.respondError(c, err, "خطا در بروزرسانی اسلاید")
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *Handler) DeleteSlide(c *gin.Context) {
	if err := h.Slides.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "خطا در حذف اسلاید")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "اسلاید حذف شد"})
}
