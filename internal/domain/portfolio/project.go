package portfolio

import (
	"gorm.io/datatypes"

	"github.com/yungbote/portfolio-backend/internal/pkg/optional"
)

type Project struct {
	ID          uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string                      `gorm:"not null;column:title" json:"title"`
	Description string                      `gorm:"not null;column:description" json:"description"`
	ImageURL    *string                     `gorm:"column:image_url" json:"imageUrl"`
	ProjectURL  *string                     `gorm:"column:project_url" json:"projectUrl"`
	GithubURL   *string                     `gorm:"column:github_url" json:"githubUrl"`
	Featured    bool                        `gorm:"not null;default:false;index;column:featured" json:"featured"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
}

func (Project) TableName() string { return "projects" }

type ProjectInput struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	ImageURL    *string  `yaml:"imageUrl"`
	ProjectURL  *string  `yaml:"projectUrl"`
	GithubURL   *string  `yaml:"githubUrl"`
	Featured    bool     `yaml:"featured"`
	Tags        []string `yaml:"tags"`
}

func (in ProjectInput) Model() *Project {
	return &Project{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		ProjectURL:  in.ProjectURL,
		GithubURL:   in.GithubURL,
		Featured:    in.Featured,
		Tags:        datatypes.NewJSONSlice(in.Tags),
	}
}

type ProjectPatch struct {
	Title       optional.Field[string]   `json:"title"`
	Description optional.Field[string]   `json:"description"`
	ImageURL    optional.Field[string]   `json:"imageUrl"`
	ProjectURL  optional.Field[string]   `json:"projectUrl"`
	GithubURL   optional.Field[string]   `json:"githubUrl"`
	Featured    optional.Field[bool]     `json:"featured"`
	Tags        optional.Field[[]string] `json:"tags"`
}

func (p ProjectPatch) Columns() map[string]any {
	cols := map[string]any{}
	if v, ok := p.Title.Get(); ok {
		cols["title"] = v
	}
	if v, ok := p.Description.Get(); ok {
		cols["description"] = v
	}
	if p.ImageURL.IsSet() {
		cols["image_url"] = p.ImageURL.Ptr()
	}
	if p.ProjectURL.IsSet() {
		cols["project_url"] = p.ProjectURL.Ptr()
	}
	if p.GithubURL.IsSet() {
		cols["github_url"] = p.GithubURL.Ptr()
	}
	if p.Featured.IsSet() {
		v, _ := p.Featured.Get()
		cols["featured"] = v
	}
	if p.Tags.IsSet() {
		v, _ := p.Tags.Get()
		cols["tags"] = datatypes.NewJSONSlice(v)
	}
	return cols
}
