package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"portfolio/internal/apperror"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, apperror.Status(nil))
	assert.Equal(t, http.StatusBadRequest, apperror.Status(apperror.Invalid("bad %s", "input")))
	assert.Equal(t, http.StatusNotFound, apperror.Status(apperror.NotFound("project", 7)))
	assert.Equal(t, http.StatusInternalServerError, apperror.Status(errors.New("disk I/O error")))

	// Wrapping keeps the classification.
	wrapped := fmt.Errorf("failed to update status: %w", apperror.NotFound("contact message", 3))
	assert.Equal(t, http.StatusNotFound, apperror.Status(wrapped))
}

func TestNotFoundMessage(t *testing.T) {
	err := apperror.NotFound("project", 42)
	assert.EqualError(t, err, "project with ID 42 not found")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestValidationErrorFields(t *testing.T) {
	err := &apperror.ValidationError{
		Message: "Validation failed",
		Fields:  map[string]string{"email": "invalid email format"},
	}
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, "Validation failed (email: invalid email format)", err.Error())
}
