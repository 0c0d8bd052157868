package repos

import (
	"github.com/yungbote/portfolio-backend/internal/data/repos/analytics"
	"github.com/yungbote/portfolio-backend/internal/data/repos/contact"
	"github.com/yungbote/portfolio-backend/internal/data/repos/portfolio"
	"github.com/yungbote/portfolio-backend/internal/data/repos/user"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProfileRepo = portfolio.ProfileRepo
type ProjectRepo = portfolio.ProjectRepo

type VisitRepo = analytics.VisitRepo
type StatRepo = analytics.StatRepo

type MessageRepo = contact.MessageRepo

type UserRepo = user.UserRepo

func NewProfileRepo(db *gorm.DB, log *logger.Logger) ProfileRepo {
	return portfolio.NewProfileRepo(db, log)
}

func NewProjectRepo(db *gorm.DB, log *logger.Logger) ProjectRepo {
	return portfolio.NewProjectRepo(db, log)
}

func NewVisitRepo(db *gorm.DB, log *logger.Logger) VisitRepo {
	return analytics.NewVisitRepo(db, log)
}

func NewStatRepo(db *gorm.DB, log *logger.Logger) StatRepo {
	return analytics.NewStatRepo(db, log)
}

func NewMessageRepo(db *gorm.DB, log *logger.Logger) MessageRepo {
	return contact.NewMessageRepo(db, log)
}

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo {
	return user.NewUserRepo(db, log)
}
