package models

import "time"

// Education dates are free-form strings on purpose; sort order is
// lexicographic for non-ISO input.
type Education struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Institution string `gorm:"column:institution;type:text" json:"institution"`
	Degree      string `gorm:"column:degree;type:text" json:"degree"`
	StartDate   string `gorm:"column:start_date;type:text" json:"startDate"`
	EndDate     string `gorm:"column:end_date;type:text" json:"endDate"`
	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	LogoURL     string `gorm:"column:logo_url;type:text" json:"logoUrl,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"createdAt"`
}

func (Education) TableName() string { return "education" }
