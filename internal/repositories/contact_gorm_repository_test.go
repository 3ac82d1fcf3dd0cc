package repositories_test

import (
	"testing"
	"time"

	"portfolio/internal/apperror"
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMContactRepository_CreateAndList(t *testing.T) {
	repo := repositories.NewGORMContactRepository(newTestDB(t))

	first := &models.ContactMessage{Name: "Ann", Email: "a@b.com", Subject: "Hi", Message: "first", CreatedAt: baseTime.Add(-2 * time.Hour)}
	second := &models.ContactMessage{Name: "Bob", Email: "bob@example.org", Message: "second", Status: models.StatusRead}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))
	assert.Equal(t, uint(1), first.ID)

	messages, err := repo.List(repositories.ContactFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Bob", messages[0].Name)
	assert.Equal(t, models.StatusUnread, messages[1].Status)

	messages, err = repo.List(repositories.ContactFilter{Status: models.StatusRead, Limit: 50})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, second.ID, messages[0].ID)
}

func TestGORMContactRepository_UpdateStatus(t *testing.T) {
	repo := repositories.NewGORMContactRepository(newTestDB(t))

	msg := &models.ContactMessage{Name: "Ann", Email: "a@b.com", Message: "hi"}
	require.NoError(t, repo.Create(msg))

	require.NoError(t, repo.UpdateStatus(msg.ID, models.StatusReplied))
	messages, err := repo.List(repositories.ContactFilter{Status: models.StatusReplied, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	err = repo.UpdateStatus(999, models.StatusRead)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
