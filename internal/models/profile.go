package models

import "time"

// DefaultProfileID is the fixed key of the singleton profile row.
const DefaultProfileID = "default"

type Profile struct {
	ID       string `gorm:"column:id;type:text;primaryKey" json:"id"`
	FullName string `gorm:"column:full_name;type:text" json:"fullName"`
	Title    string `gorm:"column:title;type:text" json:"title"`
	Bio      string `gorm:"column:bio;type:text" json:"bio"`

	Email    string `gorm:"column:email;type:text" json:"email"`
	Phone    string `gorm:"column:phone;type:text" json:"phone,omitempty"`
	Location string `gorm:"column:location;type:text" json:"location,omitempty"`

	GithubURL   string `gorm:"column:github_url;type:text" json:"githubUrl,omitempty"`
	LinkedinURL string `gorm:"column:linkedin_url;type:text" json:"linkedinUrl,omitempty"`
	TwitterURL  string `gorm:"column:twitter_url;type:text" json:"twitterUrl,omitempty"`
	WebsiteURL  string `gorm:"column:website_url;type:text" json:"websiteUrl,omitempty"`

	ImageURL string `gorm:"column:image_url;type:text" json:"imageUrl,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updatedAt"`
}

func (Profile) TableName() string { return "profiles" }
