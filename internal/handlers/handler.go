package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/apperrors"
	"github.com/harentsoaR/pet24-api/internal/services"
	"github.com/harentsoaR/pet24-api/internal/utils"
)

const (
	msgUnauthorized   = "دسترسی غیرمجاز"
	msgInvalidRequest = "درخواست نامعتبر است"
	msgLoadFailed     = "خطا در دریافت اطلاعات"
)

// Services groups the domain services the handlers call into.
type Services struct {
	Doctors      *services.DoctorService
	Posts        *services.PostService
	Products     *services.ProductService
	Slides       *services.SlideService
	Reservations *services.ReservationService
	Users        *services.UserService
}

// Options carries request-independent settings.
type Options struct {
	SecureCookie bool   // set the Secure flag on the session cookie
	StorageMode  string // reported by the health check
}

// Handler holds everything the HTTP handlers need. Handlers are methods on
// it so routes can be registered from one value.
type Handler struct {
	Services
	tokens    *utils.TokenIssuer
	opts      Options
	validator *requestValidator
	log       *zap.Logger
}

func NewHandler(svc Services, tokens *utils.TokenIssuer, opts Options, log *zap.Logger) *Handler {
	return &Handler{
		Services:  svc,
		tokens:    tokens,
		opts:      opts,
		validator: newRequestValidator(),
		log:       log.Named("http"),
	}
}

// respondError writes {"error": message} with the status carried by err.
// Errors without a client message fall back to the given one.
func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	status := apperrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": apperrors.MessageOf(err, fallback)})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// bindJSON decodes the body into req and answers 400 when it is not valid
// JSON of the expected shape.
func (h *Handler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.log.Debug("Invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
		badRequest(c, msgInvalidRequest)
		return false
	}
	return true
}

// Health reports liveness and where records are being stored.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.opts.StorageMode})
}
