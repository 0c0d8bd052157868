package domain

import (
	"github.com/yungbote/portfolio-backend/internal/domain/analytics"
	"github.com/yungbote/portfolio-backend/internal/domain/contact"
	"github.com/yungbote/portfolio-backend/internal/domain/portfolio"
	"github.com/yungbote/portfolio-backend/internal/domain/user"
)

type Profile = portfolio.Profile
type ProfileInput = portfolio.ProfileInput
type ProfilePatch = portfolio.ProfilePatch
type Project = portfolio.Project
type ProjectInput = portfolio.ProjectInput
type ProjectPatch = portfolio.ProjectPatch

type Visit = analytics.Visit
type VisitInput = analytics.VisitInput
type VisitRequest = analytics.VisitRequest
type Stat = analytics.Stat
type StatInput = analytics.StatInput
type Breakdown = analytics.Breakdown
type Bucket = analytics.Bucket
type Referrer = analytics.Referrer
type ReferrerCount = analytics.ReferrerCount

type Message = contact.Message
type MessageInput = contact.MessageInput
type MessageRequest = contact.MessageRequest

type User = user.User
type UserInput = user.UserInput

const (
	ProfileID = portfolio.ProfileID
	StatID    = analytics.StatID
)

var UniqueVisitorsFor = analytics.UniqueVisitorsFor

// Models lists every persisted entity, in migration order.
func Models() []any {
	return []any{
		&user.User{},
		&portfolio.Profile{},
		&portfolio.Project{},
		&analytics.Visit{},
		&analytics.Stat{},
		&contact.Message{},
	}
}
