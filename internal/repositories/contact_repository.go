package repositories

import "portfolio/internal/models"

// ContactFilter narrows a message listing. An empty Status lists all.
type ContactFilter struct {
	Status string
	Limit  int
	Offset int
}

// ContactRepository defines the interface for contact message data access.
type ContactRepository interface {
	Create(message *models.ContactMessage) error
	List(filter ContactFilter) ([]models.ContactMessage, error)
	UpdateStatus(id uint, status string) error
}
