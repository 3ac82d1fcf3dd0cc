package repositories_test

import (
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMSkillRepository_GetAll(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&[]models.Skill{
		{Name: "SQL", Category: "Database", Proficiency: 80},
		{Name: "React", Category: "Frontend", Proficiency: 88},
		{Name: "JavaScript", Category: "Frontend", Proficiency: 90},
	}).Error)

	skills, err := repositories.NewGORMSkillRepository(db).GetAll()
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "SQL", skills[0].Name)
	assert.Equal(t, "JavaScript", skills[1].Name)
	assert.Equal(t, "React", skills[2].Name)
}
