package app

import (
	apphttp "github.com/yungbote/portfolio-backend/internal/http"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, h Handlers, metrics *observability.Metrics) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		TracingEnabled: cfg.OtelEnabled,
		ServiceName:    cfg.OtelServiceName,

		HealthHandler:    h.Health,
		ProfileHandler:   h.Profile,
		ProjectHandler:   h.Project,
		AnalyticsHandler: h.Analytics,
		ContactHandler:   h.Contact,
		PaymentHandler:   h.Payment,
		UploadsHandler:   h.Uploads,
		StaticHandler:    h.Static,
	})
}
