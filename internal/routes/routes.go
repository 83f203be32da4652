package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/harentsoaR/pet24-api/internal/handlers"
	"github.com/harentsoaR/pet24-api/internal/logger"
	"github.com/harentsoaR/pet24-api/internal/middleware"
	"github.com/harentsoaR/pet24-api/internal/utils"
)

type Config struct {
	CORSOrigins []string
	Tokens      *utils.TokenIssuer
	Log         *zap.Logger
}

// NewRouter builds the engine with middleware and the full route table.
func NewRouter(h *handlers.Handler, cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(cfg.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Session(cfg.Tokens))

	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	Auth(api, h)
	Posts(api, h)
	Doctors(api, h)
	Products(api, h)
	Slides(api, h)
	Reservations(api, h)

	return r
}

func Auth(api *gin.RouterGroup, h *handlers.Handler) {
	limiter := middleware.NewRateLimiter(rate.Every(time.Minute/20), 10)

	auth := api.Group("/auth")
	auth.POST("/login", limiter.Middleware(), h.Login)
	auth.POST("/signup", limiter.Middleware(), h.Signup)
	auth.GET("/session", h.Session)
	auth.POST("/logout", h.Logout)
	auth.GET("/debug", h.AuthDebug)
	auth.GET("/list-users", h.ListUsers)
}

// Posts are editable without a session.
func Posts(api *gin.RouterGroup, h *handlers.Handler) {
	posts := api.Group("/posts")
	posts.GET("", h.GetPosts)
	posts.POST("", h.CreatePost)
	posts.GET("/published", h.GetPublishedPosts)
	posts.GET("/:id", h.GetPost)
	posts.PUT("/:id", h.UpdatePost)
	posts.DELETE("/:id", h.DeletePost)
}

func Doctors(api *gin.RouterGroup, h *handlers.Handler) {
	doctors := api.Group("/doctors")
	doctors.GET("", h.GetDoctors)
	doctors.GET("/:id", h.GetDoctor)

	admin := doctors.Group("", middleware.RequireAdmin())
	admin.POST("", h.CreateDoctor)
	admin.PUT("/:id", h.UpdateDoctor)
	admin.DELETE("/:id", h.DeleteDoctor)
}

func Products(api *gin.RouterGroup, h *handlers.Handler) {
	products := api.Group("/products")
	products.GET("", h.GetProducts)
	products.GET("/:id", h.GetProduct)

	admin := products.Group("", middleware.RequireAdmin())
	admin.POST("", h.CreateProduct)
	admin.PUT("/:id", h.UpdateProduct)
	admin.DELETE("/:id", h.DeleteProduct)
}

func Slides(api *gin.RouterGroup, h *handlers.Handler) {
	slides := api.Group("/slides")
	slides.GET("", h.GetSlides)
	slides.GET("/:id", h.GetSlide)

	admin := slides.Group("", middleware.RequireAdmin())
	admin.POST("", h.CreateSlide)
	admin.PUT("/:id", h.UpdateSlide)
	admin.DELETE("/:id", h.DeleteSlide)
}

func Reservations(api *gin.RouterGroup, h *handlers.Handler) {
	reservations := api.Group("/reservations")
	reservations.POST("", h.CreateReservation)
	reservations.GET("", middleware.RequireAdmin(), h.GetReservations)
}
