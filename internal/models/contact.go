package models

import "time"

// Contact message statuses.
const (
	StatusUnread   = "unread"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// DefaultSubject is stored when a message is submitted without a subject.
const DefaultSubject = "No subject"

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"not null"`
	Status    string    `json:"status" gorm:"index;not null;default:unread"` // unread, read, replied, archived
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
