// Package models defines the database models for the portfolio API.
package models

import "time"

type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	Technologies string    `json:"technologies"` // comma-delimited, stored as submitted
	GithubURL    string    `json:"github_url"`
	LiveURL      string    `json:"live_url"`
	ImageURL     string    `json:"image_url"`
	Featured     bool      `json:"featured" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Skill struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Category         string    `json:"category" gorm:"not null"`
	ProficiencyLevel int       `json:"proficiency_level" gorm:"default:1"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"not null"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
}

type BlogPost struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;not null"`
	Content       string    `json:"content" gorm:"not null"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featured_image"`
	Published     bool      `json:"published" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
