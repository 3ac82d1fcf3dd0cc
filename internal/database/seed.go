package database

import (
	"fmt"
	"log/slog"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

var sampleProjects = []models.Project{
	{
		Title:        "Advanced Portfolio Website",
		Description:  "Modern portfolio with TypeScript, Express.js, SQLite, and advanced animations",
		Category:     "Web Development",
		ImageURL:     "/images/portfolio.jpg",
		GithubURL:    "https://github.com/jabelopitso/portfolio",
		DemoURL:      "https://jabelopitso.com",
		Technologies: []string{"TypeScript", "Express.js", "SQLite", "Three.js", "GSAP"},
	},
	{
		Title:        "Real-time Chat Application",
		Description:  "WebSocket-based chat with encryption and file sharing",
		Category:     "Web Development",
		ImageURL:     "/images/chat-app.jpg",
		GithubURL:    "https://github.com/jabelopitso/chat-app",
		Technologies: []string{"Node.js", "Socket.io", "Redis", "JWT", "WebRTC"},
	},
	{
		Title:        "Machine Learning Dashboard",
		Description:  "Interactive ML model visualization and training interface",
		Category:     "AI",
		ImageURL:     "/images/ml-dashboard.jpg",
		GithubURL:    "https://github.com/jabelopitso/ml-dashboard",
		Technologies: []string{"Python", "TensorFlow", "FastAPI", "React", "D3.js"},
	},
}

var sampleSkills = []models.Skill{
	{Name: "JavaScript", Category: "Frontend", Proficiency: 90, YearsExperience: 3},
	{Name: "TypeScript", Category: "Frontend", Proficiency: 85, YearsExperience: 2},
	{Name: "React", Category: "Frontend", Proficiency: 88, YearsExperience: 2},
	{Name: "Node.js", Category: "Backend", Proficiency: 82, YearsExperience: 2},
	{Name: "Python", Category: "Backend", Proficiency: 85, YearsExperience: 3},
	{Name: "SQL", Category: "Database", Proficiency: 80, YearsExperience: 2},
	{Name: "Docker", Category: "DevOps", Proficiency: 75, YearsExperience: 1},
	{Name: "AWS", Category: "Cloud", Proficiency: 70, YearsExperience: 1},
}

// Seed inserts the sample projects and skills, but only into an empty
// projects table so restarts never duplicate rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range sampleProjects {
		project := sampleProjects[i]
		if err := db.Create(&project).Error; err != nil {
			return fmt.Errorf("failed to seed project %s: %w", project.Title, err)
		}
		slog.Debug("seeded project", "id", project.ID, "title", project.Title)
	}
	for i := range sampleSkills {
		skill := sampleSkills[i]
		if err := db.Create(&skill).Error; err != nil {
			return fmt.Errorf("failed to seed skill %s: %w", skill.Name, err)
		}
	}
	slog.Info("seeded sample data", "projects", len(sampleProjects), "skills", len(sampleSkills))
	return nil
}
