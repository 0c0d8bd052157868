package app

import (
	httpH "github.com/yungbote/portfolio-backend/internal/http/handlers"
	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/uploads"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Profile   *httpH.ProfileHandler
	Project   *httpH.ProjectHandler
	Analytics *httpH.AnalyticsHandler
	Contact   *httpH.ContactHandler
	Payment   *httpH.PaymentHandler
	Uploads   *httpH.UploadsHandler
	Static    *httpH.StaticHandler
}

func wireHandlers(log *logger.Logger, cfg Config, s Services, store uploads.Store, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	static := httpH.NewStaticHandler(cfg.StaticDir)
	if !static.Available() {
		log.Warn("Static bundle not found; SPA fallback disabled", "dir", cfg.StaticDir)
		static = nil
	}
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Profile:   httpH.NewProfileHandler(log, s.Profile, metrics),
		Project:   httpH.NewProjectHandler(log, s.Project),
		Analytics: httpH.NewAnalyticsHandler(log, s.Analytics, metrics),
		Contact:   httpH.NewContactHandler(log, s.Contact, metrics),
		Payment:   httpH.NewPaymentHandler(log, s.Payment, metrics),
		Uploads:   httpH.NewUploadsHandler(log, store),
		Static:    static,
	}
}
