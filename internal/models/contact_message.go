package models

import "time"

// ContactMessage is written by the public contact form only; the admin panel
// reads and deletes.
type ContactMessage struct {
	ID      string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"column:name;type:text" json:"name"`
	Email   string `gorm:"column:email;type:text" json:"email"`
	Subject string `gorm:"column:subject;type:text" json:"subject,omitempty"`
	Message string `gorm:"column:message;type:text" json:"message"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"createdAt"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
