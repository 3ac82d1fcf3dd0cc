package services

import (
	"log/slog"
	"strings"

	"portfolio/internal/apperror"
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	PublishContactReceived(payload map[string]interface{}) error
}

// ContactRequest is the body of a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contactemail"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// StatusRequest is the body of a status update.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read replied archived"`
}

// MessageQuery is the raw admin listing request.
type MessageQuery struct {
	Status string
	Limit  int
	Offset int
}

// MessagePage is one page of contact messages.
type MessagePage struct {
	Messages   []models.ContactMessage `json:"messages"`
	Pagination Page                    `json:"pagination"`
}

// ContactService handles contact form submissions and their review status.
type ContactService struct {
	repo      repositories.ContactRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewContactService creates a new ContactService. publisher may be nil.
func NewContactService(repo repositories.ContactRepository, publisher EventPublisher) *ContactService {
	return &ContactService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// SubmitMessage validates and stores a contact message. Nothing is written
// when validation fails.
func (s *ContactService) SubmitMessage(req ContactRequest) (*models.ContactMessage, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err := s.validate.Struct(req); err != nil {
		if hasTag(err, "required") {
			return nil, toValidationError(err, "Name, email, and message are required")
		}
		return nil, toValidationError(err, "Invalid email format")
	}

	subject := req.Subject
	if subject == "" {
		subject = models.DefaultSubject
	}
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: subject,
		Message: req.Message,
		Status:  models.StatusUnread,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		err := s.publisher.PublishContactReceived(map[string]interface{}{
			"id":      message.ID,
			"name":    message.Name,
			"email":   message.Email,
			"subject": message.Subject,
		})
		if err != nil {
			slog.Warn("failed to publish contact event", "id", message.ID, "error", err)
		}
	}
	return message, nil
}

// ListMessages returns a page of messages, optionally filtered by status.
func (s *ContactService) ListMessages(q MessageQuery) (*MessagePage, error) {
	page, err := normalizePage(q.Limit, q.Offset, defaultMessagePageSize)
	if err != nil {
		return nil, err
	}
	messages, err := s.repo.List(repositories.ContactFilter{
		Status: strings.TrimSpace(q.Status),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &MessagePage{Messages: messages, Pagination: page}, nil
}

// UpdateStatus moves a message to one of the four review statuses. Any other
// value is rejected before the store is touched.
func (s *ContactService) UpdateStatus(id uint, req StatusRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return apperror.Invalid("Invalid status. Must be: unread, read, replied, or archived")
	}
	return s.repo.UpdateStatus(id, req.Status)
}
