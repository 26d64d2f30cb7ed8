package models

import "time"

type Experience struct {
	ID          string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Company     string `gorm:"column:company;type:text" json:"company"`
	Role        string `gorm:"column:role;type:text" json:"role"`
	Description string `gorm:"column:description;type:text" json:"description"`
	StartDate   string `gorm:"column:start_date;type:text" json:"startDate"`
	EndDate     string `gorm:"column:end_date;type:text" json:"endDate"`
	LogoURL     string `gorm:"column:logo_url;type:text" json:"logoUrl,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"createdAt"`
}

func (Experience) TableName() string { return "experiences" }
