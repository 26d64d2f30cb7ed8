package models

import "time"

// Admin exists for authentication only; there is no CRUD surface over it.
type Admin struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:text" json:"-"`
	Name         string `gorm:"column:name;type:text" json:"name"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"createdAt"`
}

func (Admin) TableName() string { return "admins" }
