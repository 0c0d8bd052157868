package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type Repos struct {
	Profile repos.ProfileRepo
	Project repos.ProjectRepo
	Visit   repos.VisitRepo
	Stat    repos.StatRepo
	Message repos.MessageRepo
	User    repos.UserRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Profile: repos.NewProfileRepo(db, log),
		Project: repos.NewProjectRepo(db, log),
		Visit:   repos.NewVisitRepo(db, log),
		Stat:    repos.NewStatRepo(db, log),
		Message: repos.NewMessageRepo(db, log),
		User:    repos.NewUserRepo(db, log),
	}
}
