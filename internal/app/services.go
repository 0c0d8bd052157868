package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type Services struct {
	Bootstrap services.BootstrapService
	Profile   services.ProfileService
	Project   services.ProjectService
	Analytics services.AnalyticsService
	Contact   services.ContactService
	Payment   services.PaymentService
	User      services.UserService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos, c Clients) Services {
	log.Info("Wiring services...")
	notifier := services.NewMailNotifier(log, c.Mailer, c.Mailbox)
	return Services{
		Bootstrap: services.NewBootstrapService(db, log, r.Profile, r.Project, r.Stat),
		Profile:   services.NewProfileService(db, log, r.Profile, c.Uploads),
		Project:   services.NewProjectService(db, log, r.Project),
		Analytics: services.NewAnalyticsService(db, log, r.Visit, r.Stat),
		Contact:   services.NewContactService(db, log, r.Message, notifier),
		Payment:   services.NewPaymentService(log, c.Stripe),
		User:      services.NewUserService(db, log, r.User),
	}
}
