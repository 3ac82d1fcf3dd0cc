package repositories

import (
	"fmt"

	"portfolio/internal/apperror"
	"portfolio/internal/models"

	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
	}
}

// Create stores a new contact message.
func (r *GORMContactRepository) Create(message *models.ContactMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// List retrieves messages newest first.
func (r *GORMContactRepository) List(filter ContactFilter) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	q := r.db.Model(&models.ContactMessage{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("created_at DESC").Order("id DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

// UpdateStatus sets the status of a single message.
func (r *GORMContactRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update contact message status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("contact message", id)
	}
	return nil
}
