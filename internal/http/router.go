package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/portfolio-backend/internal/http/handlers"
	httpMW "github.com/yungbote/portfolio-backend/internal/http/middleware"
	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	AllowedOrigins []string
	TracingEnabled bool
	ServiceName    string

	HealthHandler    *httpH.HealthHandler
	ProfileHandler   *httpH.ProfileHandler
	ProjectHandler   *httpH.ProjectHandler
	AnalyticsHandler *httpH.AnalyticsHandler
	ContactHandler   *httpH.ContactHandler
	PaymentHandler   *httpH.PaymentHandler
	UploadsHandler   *httpH.UploadsHandler
	StaticHandler    *httpH.StaticHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log))
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	// Uploaded images
	if cfg.UploadsHandler != nil {
		r.GET("/uploads/:name", cfg.UploadsHandler.Serve)
	}

	api := r.Group("/api")
	{
		// Profile
		if cfg.ProfileHandler != nil {
			api.GET("/profile", cfg.ProfileHandler.GetProfile)
			api.PATCH("/profile", cfg.ProfileHandler.UpdateProfile)
			api.POST("/profile/image", cfg.ProfileHandler.UploadImage)
		}

		// Projects
		if cfg.ProjectHandler != nil {
			api.GET("/projects", cfg.ProjectHandler.ListProjects)
			api.GET("/projects/featured", cfg.ProjectHandler.GetFeatured)
		}

		// Analytics
		if cfg.AnalyticsHandler != nil {
			api.POST("/analytics/visit", cfg.AnalyticsHandler.RecordVisit)
			api.GET("/analytics/stats", cfg.AnalyticsHandler.GetStats)
			api.GET("/analytics/locations", cfg.AnalyticsHandler.GetLocations)
			api.GET("/analytics/referrers", cfg.AnalyticsHandler.GetReferrers)
		}

		// Contact
		if cfg.ContactHandler != nil {
			api.POST("/contact", cfg.ContactHandler.Submit)
		}

		// Payments
		if cfg.PaymentHandler != nil {
			api.POST("/create-payment-intent", cfg.PaymentHandler.CreateIntent)
			api.GET("/payment-status", cfg.PaymentHandler.GetStatus)
		}
	}

	// Built client, with index.html fallback for client-side routes.
	if cfg.StaticHandler.Available() {
		r.NoRoute(cfg.StaticHandler.Serve)
	} else {
		r.NoRoute(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorBody{Message: "Not found"})
		})
	}

	return r
}
