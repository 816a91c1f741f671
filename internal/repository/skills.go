package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// List returns skills ordered by category, strongest first within each.
// A non-empty category restricts to that category.
func (r *SkillRepository) List(category string) ([]models.Skill, error) {
	tx := r.db.Order("category, proficiency_level DESC")
	if category != "" {
		tx = tx.Where("category = ?", category)
	}

	skills := make([]models.Skill, 0)
	if err := tx.Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// ListCategories returns the distinct categories currently in use, ascending.
func (r *SkillRepository) ListCategories() ([]string, error) {
	categories := make([]string, 0)
	err := r.db.Model(&models.Skill{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("list skill categories: %w", err)
	}
	return categories, nil
}

func (r *SkillRepository) Get(id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get skill: %w", err)
	}
	return &skill, nil
}

func (r *SkillRepository) Create(skill *models.Skill) (uint, error) {
	if skill.Name == "" || skill.Category == "" {
		return 0, &ValidationError{Field: "name, category", Message: "Name and category are required"}
	}
	if skill.ProficiencyLevel == 0 {
		skill.ProficiencyLevel = 1
	}

	if err := r.db.Create(skill).Error; err != nil {
		return 0, fmt.Errorf("create skill: %w", err)
	}
	return skill.ID, nil
}

func (r *SkillRepository) Update(id uint, skill *models.Skill) error {
	if skill.Name == "" || skill.Category == "" {
		return &ValidationError{Field: "name, category", Message: "Name and category are required"}
	}
	level := skill.ProficiencyLevel
	if level == 0 {
		level = 1
	}

	res := r.db.Model(&models.Skill{}).Where("id = ?", id).Updates(map[string]any{
		"name":              skill.Name,
		"category":          skill.Category,
		"proficiency_level": level,
		"description":       skill.Description,
	})
	if res.Error != nil {
		return fmt.Errorf("update skill: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SkillRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Skill{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete skill: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
