package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.List(boolParam(r, "featured"))
	if err != nil {
		s.writeError(w, err, "", "Failed to fetch projects")
		return
	}
	s.respond(w, http.StatusOK, projects)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		var project *models.Project
		project, err = s.projects.Get(id)
		if err == nil {
			s.respond(w, http.StatusOK, project)
			return
		}
	}
	s.writeError(w, err, "Project not found", "Failed to fetch project")
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := decodeJSON(r, &project); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.projects.Create(&project)
	if err != nil {
		s.writeError(w, err, "", "Failed to create project")
		return
	}
	s.respond(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "Project created successfully",
	})
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		var project models.Project
		if err := decodeJSON(r, &project); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		err = s.projects.Update(id, &project)
	}
	if err != nil {
		s.writeError(w, err, "Project not found", "Failed to update project")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"message": "Project updated successfully"})
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		err = s.projects.Delete(id)
	}
	if err != nil {
		s.writeError(w, err, "Project not found", "Failed to delete project")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
