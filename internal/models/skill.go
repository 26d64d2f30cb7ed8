package models

import "time"

type Skill struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:text" json:"name"`
	Category string `gorm:"column:category;type:text" json:"category"`
	Icon     string `gorm:"column:icon;type:text" json:"icon,omitempty"`

	// proficiency, conventionally 0-100; zero is a real value, so no omitempty
	Level int `gorm:"column:level" json:"level"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"createdAt"`
}

func (Skill) TableName() string { return "skills" }
