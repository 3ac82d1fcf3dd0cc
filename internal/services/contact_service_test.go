package services_test

import (
	"fmt"
	"testing"

	"portfolio/internal/apperror"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_SubmitMessage(t *testing.T) {
	mockRepo := new(MockContactRepository)
	publisher := new(MockPublisher)
	service := services.NewContactService(mockRepo, publisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.ContactMessage")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.ContactMessage).ID = 1
	}).Return(nil).Once()
	publisher.On("PublishContactReceived", mock.Anything).Return(nil).Once()

	msg, err := service.SubmitMessage(services.ContactRequest{Name: "Ann", Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), msg.ID)
	assert.Equal(t, models.DefaultSubject, msg.Subject)
	assert.Equal(t, models.StatusUnread, msg.Status)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestContactService_SubmitMessagePublishFailureIsNotFatal(t *testing.T) {
	mockRepo := new(MockContactRepository)
	publisher := new(MockPublisher)
	service := services.NewContactService(mockRepo, publisher)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	publisher.On("PublishContactReceived", mock.Anything).Return(fmt.Errorf("channel closed")).Once()

	_, err := service.SubmitMessage(services.ContactRequest{Name: "Ann", Email: "a@b.com", Subject: "Work", Message: "hi"})
	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestContactService_SubmitMessageValidation(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	cases := []struct {
		req     services.ContactRequest
		message string
	}{
		{services.ContactRequest{Email: "a@b.com", Message: "hi"}, "Name, email, and message are required"},
		{services.ContactRequest{Name: "Ann", Message: "hi"}, "Name, email, and message are required"},
		{services.ContactRequest{Name: "Ann", Email: "a@b.com", Message: "   "}, "Name, email, and message are required"},
		{services.ContactRequest{Name: "Ann", Email: "bad", Message: "hi"}, "Invalid email format"},
		{services.ContactRequest{Name: "Ann", Email: "a@localhost", Message: "hi"}, "Invalid email format"},
		{services.ContactRequest{Name: "Ann", Email: "a b@c.com", Message: "hi"}, "Invalid email format"},
	}
	for _, tc := range cases {
		_, err := service.SubmitMessage(tc.req)
		var verr *apperror.ValidationError
		if assert.ErrorAs(t, err, &verr, "%+v", tc.req) {
			assert.Equal(t, tc.message, verr.Message)
		}
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestContactService_ListMessages(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	expected := []models.ContactMessage{{ID: 2, Name: "Bob", Status: models.StatusRead}}
	mockRepo.On("List", repositories.ContactFilter{Status: "read", Limit: 50}).Return(expected, nil).Once()

	page, err := service.ListMessages(services.MessageQuery{Status: "read"})
	require.NoError(t, err)
	assert.Equal(t, expected, page.Messages)
	assert.Equal(t, services.Page{Limit: 50, Offset: 0}, page.Pagination)
	mockRepo.AssertExpectations(t)
}

func TestContactService_UpdateStatus(t *testing.T) {
	mockRepo := new(MockContactRepository)
	service := services.NewContactService(mockRepo, nil)

	for _, status := range []string{"unread", "read", "replied", "archived"} {
		mockRepo.On("UpdateStatus", uint(1), status).Return(nil).Once()
		assert.NoError(t, service.UpdateStatus(1, services.StatusRequest{Status: status}))
	}

	for _, status := range []string{"", "deleted", "READ"} {
		err := service.UpdateStatus(1, services.StatusRequest{Status: status})
		assert.True(t, apperror.IsValidation(err), status)
	}
	mockRepo.AssertNumberOfCalls(t, "UpdateStatus", 4)

	mockRepo.On("UpdateStatus", uint(9), "read").Return(apperror.NotFound("contact message", 9)).Once()
	err := service.UpdateStatus(9, services.StatusRequest{Status: "read"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, services.ValidEmail("a@b.com"))
	assert.True(t, services.ValidEmail("first.last@sub.example.org"))
	assert.False(t, services.ValidEmail("bad"))
	assert.False(t, services.ValidEmail("a@b"))
	assert.False(t, services.ValidEmail("@b.com"))
}
