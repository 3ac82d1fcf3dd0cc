package services_test

import (
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockProjectRepository is a mock implementation of repositories.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) List(filter repositories.ProjectFilter) ([]models.Project, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) GetByID(id uint) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) CategorySummary() ([]models.CategoryCount, error) {
	args := m.Called()
	return args.Get(0).([]models.CategoryCount), args.Error(1)
}

func (m *MockProjectRepository) Stats(since time.Time) (*models.ProjectStats, error) {
	args := m.Called(since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectStats), args.Error(1)
}

// MockContactRepository is a mock implementation of repositories.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(message *models.ContactMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockContactRepository) List(filter repositories.ContactFilter) ([]models.ContactMessage, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockAnalyticsRepository is a mock implementation of repositories.AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Record(event *models.AnalyticsEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) Dashboard(since time.Time) (*models.Dashboard, error) {
	args := m.Called(since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dashboard), args.Error(1)
}

func (m *MockAnalyticsRepository) RecentWithMetadata(eventType, key string, limit int) ([]models.AnalyticsEvent, error) {
	args := m.Called(eventType, key, limit)
	return args.Get(0).([]models.AnalyticsEvent), args.Error(1)
}

// MockSkillRepository is a mock implementation of repositories.SkillRepository
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) GetAll() ([]models.Skill, error) {
	args := m.Called()
	return args.Get(0).([]models.Skill), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishContactReceived(payload map[string]interface{}) error {
	args := m.Called(payload)
	return args.Error(0)
}
