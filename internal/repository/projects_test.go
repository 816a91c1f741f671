package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

func TestProjectCreateAndGet(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	id, err := repo.Create(&models.Project{
		Title:        "Portfolio Site",
		Description:  "Personal portfolio website",
		Technologies: "Go, SQLite",
		GithubURL:    "https://github.com/example/portfolio",
		Featured:     true,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	project, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Site", project.Title)
	assert.Equal(t, "Personal portfolio website", project.Description)
	assert.Equal(t, "Go, SQLite", project.Technologies)
	assert.True(t, project.Featured)
	assert.False(t, project.CreatedAt.IsZero())
}

func TestProjectCreateValidation(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	_, err := repo.Create(&models.Project{Description: "no title"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = repo.Create(&models.Project{Title: "no description"})
	require.ErrorAs(t, err, &verr)
}

func TestProjectGetNotFound(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	_, err := repo.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectListOrdering(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fixtures := []models.Project{
		{Title: "old plain", Description: "d", CreatedAt: base},
		{Title: "new plain", Description: "d", CreatedAt: base.Add(2 * time.Hour)},
		{Title: "old featured", Description: "d", Featured: true, CreatedAt: base.Add(time.Hour)},
		{Title: "new featured", Description: "d", Featured: true, CreatedAt: base.Add(3 * time.Hour)},
	}
	for i := range fixtures {
		_, err := repo.Create(&fixtures[i])
		require.NoError(t, err)
	}

	projects, err := repo.List(nil)
	require.NoError(t, err)
	require.Len(t, projects, 4)

	titles := []string{projects[0].Title, projects[1].Title, projects[2].Title, projects[3].Title}
	assert.Equal(t, []string{"new featured", "old featured", "new plain", "old plain"}, titles)
}

func TestProjectListFeaturedFilter(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	_, err := repo.Create(&models.Project{Title: "featured", Description: "d", Featured: true})
	require.NoError(t, err)
	_, err = repo.Create(&models.Project{Title: "plain", Description: "d"})
	require.NoError(t, err)

	featured, err := repo.List(boolPtr(true))
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "featured", featured[0].Title)

	plain, err := repo.List(boolPtr(false))
	require.NoError(t, err)
	require.Len(t, plain, 1)
	assert.Equal(t, "plain", plain[0].Title)
}

func TestProjectListEmpty(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	projects, err := repo.List(nil)
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectUpdate(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	id, err := repo.Create(&models.Project{Title: "before", Description: "d", Featured: true})
	require.NoError(t, err)

	err = repo.Update(id, &models.Project{Title: "after", Description: "d2", Featured: false})
	require.NoError(t, err)

	project, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "after", project.Title)
	assert.Equal(t, "d2", project.Description)
	assert.False(t, project.Featured)
}

func TestProjectUpdateNotFound(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	err := repo.Update(42, &models.Project{Title: "t", Description: "d"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectDelete(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))

	id, err := repo.Create(&models.Project{Title: "t", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))

	_, err = repo.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(id), ErrNotFound)
}
