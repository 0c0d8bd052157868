package portfolio

import (
	"github.com/yungbote/portfolio-backend/internal/pkg/optional"
	"github.com/yungbote/portfolio-backend/internal/pkg/validate"
)

// ProfileID is the id of the singleton profile row.
const ProfileID uint = 1

type Profile struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null;column:name" json:"name"`
	Age          int     `gorm:"not null;column:age" json:"age"`
	Location     string  `gorm:"not null;column:location" json:"location"`
	Bio          *string `gorm:"column:bio" json:"bio"`
	ProfileImage *string `gorm:"column:profile_image" json:"profileImage"`
	ResumeURL    *string `gorm:"column:resume_url" json:"resumeUrl"`
}

func (Profile) TableName() string { return "profiles" }

type ProfileInput struct {
	Name         string  `yaml:"name"`
	Age          int     `yaml:"age"`
	Location     string  `yaml:"location"`
	Bio          *string `yaml:"bio"`
	ProfileImage *string `yaml:"profileImage"`
	ResumeURL    *string `yaml:"resumeUrl"`
}

// ProfilePatch is a PATCH /api/profile body. Absent fields are left alone;
// null clears the nullable ones.
type ProfilePatch struct {
	Name         optional.Field[string] `json:"name"`
	Age          optional.Field[int]    `json:"age"`
	Location     optional.Field[string] `json:"location"`
	Bio          optional.Field[string] `json:"bio"`
	ProfileImage optional.Field[string] `json:"profileImage"`
	ResumeURL    optional.Field[string] `json:"resumeUrl"`
}

// Validate rejects null for the columns that cannot be cleared.
func (p ProfilePatch) Validate() error {
	var ve validate.Error
	if p.Name.IsNull() {
		ve.Add("name", validate.Expected("string", "null"))
	}
	if p.Age.IsNull() {
		ve.Add("age", validate.Expected("number", "null"))
	}
	if p.Location.IsNull() {
		ve.Add("location", validate.Expected("string", "null"))
	}
	return ve.OrNil()
}

func (p ProfilePatch) Empty() bool {
	return len(p.Columns()) == 0
}

// Columns maps the present fields to their column values.
func (p ProfilePatch) Columns() map[string]any {
	cols := map[string]any{}
	if v, ok := p.Name.Get(); ok {
		cols["name"] = v
	}
	if v, ok := p.Age.Get(); ok {
		cols["age"] = v
	}
	if v, ok := p.Location.Get(); ok {
		cols["location"] = v
	}
	if p.Bio.IsSet() {
		cols["bio"] = p.Bio.Ptr()
	}
	if p.ProfileImage.IsSet() {
		cols["profile_image"] = p.ProfileImage.Ptr()
	}
	if p.ResumeURL.IsSet() {
		cols["resume_url"] = p.ResumeURL.Ptr()
	}
	return cols
}

func (in ProfileInput) Model() *Profile {
	return &Profile{
		Name:         in.Name,
		Age:          in.Age,
		Location:     in.Location,
		Bio:          in.Bio,
		ProfileImage: in.ProfileImage,
		ResumeURL:    in.ResumeURL,
	}
}
