package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns all projects, featured first, newest first within each group.
// A non-nil featured filters on that value.
func (r *ProjectRepository) List(featured *bool) ([]models.Project, error) {
	tx := r.db.Order("featured DESC, created_at DESC")
	if featured != nil {
		tx = tx.Where("featured = ?", *featured)
	}

	projects := make([]models.Project, 0)
	if err := tx.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Get(id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &project, nil
}

func (r *ProjectRepository) Create(project *models.Project) (uint, error) {
	if project.Title == "" || project.Description == "" {
		return 0, &ValidationError{Field: "title, description", Message: "Title and description are required"}
	}

	if err := r.db.Create(project).Error; err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	return project.ID, nil
}

// Update replaces every mutable field of the project and refreshes
// updated_at. All fields are written, including zero values, so a PUT fully
// replaces the previous state.
func (r *ProjectRepository) Update(id uint, project *models.Project) error {
	if project.Title == "" || project.Description == "" {
		return &ValidationError{Field: "title, description", Message: "Title and description are required"}
	}

	res := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]any{
		"title":        project.Title,
		"description":  project.Description,
		"technologies": project.Technologies,
		"github_url":   project.GithubURL,
		"live_url":     project.LiveURL,
		"image_url":    project.ImageURL,
		"featured":     project.Featured,
	})
	if res.Error != nil {
		return fmt.Errorf("update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Project{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
