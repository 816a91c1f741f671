package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

func (s *Server) listSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.skills.List(r.URL.Query().Get("category"))
	if err != nil {
		s.writeError(w, err, "", "Failed to fetch skills")
		return
	}
	s.respond(w, http.StatusOK, skills)
}

func (s *Server) listSkillCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.skills.ListCategories()
	if err != nil {
		s.writeError(w, err, "", "Failed to fetch categories")
		return
	}
	s.respond(w, http.StatusOK, categories)
}

func (s *Server) getSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		var skill *models.Skill
		skill, err = s.skills.Get(id)
		if err == nil {
			s.respond(w, http.StatusOK, skill)
			return
		}
	}
	s.writeError(w, err, "Skill not found", "Failed to fetch skill")
}

func (s *Server) createSkill(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := decodeJSON(r, &skill); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.skills.Create(&skill)
	if err != nil {
		s.writeError(w, err, "", "Failed to create skill")
		return
	}
	s.respond(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "Skill created successfully",
	})
}

func (s *Server) updateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		var skill models.Skill
		if err := decodeJSON(r, &skill); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		err = s.skills.Update(id, &skill)
	}
	if err != nil {
		s.writeError(w, err, "Skill not found", "Failed to update skill")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"message": "Skill updated successfully"})
}

func (s *Server) deleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		err = s.skills.Delete(id)
	}
	if err != nil {
		s.writeError(w, err, "Skill not found", "Failed to delete skill")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}
