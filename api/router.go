package api

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"net/http"
	"projecthub/api/types"
	"projecthub/api/validate"
	"projecthub/controllers"
	"projecthub/services"
)

const Prefix = "/api/v1"

type Deps struct {
	// DB is nil when the database could not be opened; DBErr then says why
	// and every data route answers 503 with setup steps.
	DB    *gorm.DB
	DBErr error

	RateLimiter *RateLimiter
	Verbose     bool

	// TrustedProxies may set the client IP through X-Forwarded-For. Empty
	// means the socket address is always used.
	TrustedProxies []string
}

func NewRouter(deps Deps) *gin.Engine {
	validate.Setup()

	router := gin.New()
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		log.Error().Err(err).Strs("proxies", deps.TrustedProxies).Msg("invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(RequestID(), ZLogMiddleware(deps.Verbose), Recovery(), SecureHeaders())
	if deps.RateLimiter != nil {
		router.Use(deps.RateLimiter.Middleware())
	}
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.Failure("Route not found", nil))
	})

	router.GET("/health", controllers.Health)
	v1 := router.Group(Prefix)
	v1.GET("/health", controllers.Health)

	data := v1.Group("")
	if deps.DB == nil {
		data.Use(Unavailable(deps.DBErr))
	}

	contacts := services.NewContactService(deps.DB)
	projects := services.NewProjectService(deps.DB)
	tasks := services.NewTaskService(deps.DB)

	controllers.NewContactController(contacts, tasks).Register(data.Group("/contact"))
	controllers.NewProjectController(projects, tasks).Register(data.Group("/project"))
	controllers.NewTaskController(tasks).Register(data.Group("/task"))

	return router
}

// WithCORS wraps the engine so preflight requests never reach gin.
func WithCORS(h http.Handler, origins []string) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)(h)
}
