package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"column:title;type:text" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`

	// JSON array of tag strings, ex: ["Go","Postgres"]
	TechStack datatypes.JSON `gorm:"column:tech_stack;type:jsonb" json:"techStack"`

	ImageURL  string `gorm:"column:image_url;type:text" json:"imageUrl,omitempty"`
	LiveURL   string `gorm:"column:live_url;type:text" json:"liveUrl,omitempty"`
	GithubURL string `gorm:"column:github_url;type:text" json:"githubUrl,omitempty"`

	Featured bool `gorm:"column:featured" json:"featured"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }

// Tags decodes the tech stack; malformed JSON degrades to nil instead of
// failing the caller.
func (p Project) Tags() []string {
	if len(p.TechStack) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(p.TechStack, &tags); err != nil {
		return nil
	}
	return tags
}
