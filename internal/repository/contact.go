package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// ContactStats are the admin dashboard counters. Recent covers the trailing
// seven days from the moment of the call.
type ContactStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Recent int64 `json:"recent"`
}

// List returns messages newest first. A non-nil isRead filters on read state.
func (r *ContactRepository) List(isRead *bool) ([]models.ContactMessage, error) {
	tx := r.db.Order("created_at DESC")
	if isRead != nil {
		tx = tx.Where("is_read = ?", *isRead)
	}

	messages := make([]models.ContactMessage, 0)
	if err := tx.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// Create stores a new message. IPAddress and UserAgent come from the request
// and are kept as opaque metadata, never validated.
func (r *ContactRepository) Create(message *models.ContactMessage) (uint, error) {
	if message.Name == "" || message.Email == "" || message.Message == "" {
		return 0, &ValidationError{Field: "name, email, message", Message: "Name, email, and message are required"}
	}
	if !validEmail(message.Email) {
		return 0, &ValidationError{Field: "email", Message: "Invalid email address"}
	}

	if err := r.db.Create(message).Error; err != nil {
		return 0, fmt.Errorf("create contact message: %w", err)
	}
	return message.ID, nil
}

// MarkRead flags the message as read. Marking an already-read message again
// still succeeds.
func (r *ContactRepository) MarkRead(id uint) error {
	res := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("mark contact message read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(id uint) error {
	res := r.db.Delete(&models.ContactMessage{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete contact message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats recomputes the counters on every call, nothing is cached.
func (r *ContactRepository) Stats() (*ContactStats, error) {
	var stats ContactStats

	if err := r.db.Model(&models.ContactMessage{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}
	if err := r.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&stats.Unread).Error; err != nil {
		return nil, fmt.Errorf("count unread contact messages: %w", err)
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := r.db.Model(&models.ContactMessage{}).Where("created_at >= ?", weekAgo).Count(&stats.Recent).Error; err != nil {
		return nil, fmt.Errorf("count recent contact messages: %w", err)
	}
	return &stats, nil
}
