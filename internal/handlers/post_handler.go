package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/pet24-api/internal/models"
)

const msgPostFieldsRequired = "عنوان و محتوا الزامی است"

type postRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
	Image     *string `json:"image"`
}

func (r postRequest) published() bool {
	return r.Published != nil && *r.Published
}

func (h *Handler) GetPosts(c *gin.Context) {
	posts, err := h.Posts.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetPublishedPosts(c *gin.Context) {
	posts, err := h.Posts.Published(c.Request.Context())
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.Posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req postRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if missingField(field{"title", req.Title}, field{"content", req.Content}) != "" {
		badRequest(c, msgPostFieldsRequired)
		return
	}

	post, err := h.Posts.Create(c.Request.Context(), models.Post{
		Title:     trimmed(req.Title),
		Content:   trimmed(req.Content),
		Image:     trimmed(req.Image),
		Published: req.published(),
	})
	if err != nil {
		h.respondError(c, err, "خطا در ایجاد پست")
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost replaces title, content and published; the image is kept when
// the body omits it.
func (h *Handler) UpdatePost(c *gin.Context) {
	var req postRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if missingField(field{"title", req.Title}, field{"content", req.Content}) != "" {
		badRequest(c, msgPostFieldsRequired)
		return
	}

	published := req.published()
	post, err := h.Posts.Update(c.Request.Context(), c.Param("id"), models.PostPatch{
		Title:     trimmedPtr(req.Title),
		Content:   trimmedPtr(req.Content),
		Image:     trimmedPtr(req.Image),
		Published: &published,
	})
	if err != nil {
		h.respondError(c, err, "خطا در به‌روزرسانی پست")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.Posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "خطا در حذف پست")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "پست با موفقیت حذف شد"})
}
