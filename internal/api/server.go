// Package api maps HTTP routes onto the resource repositories and translates
// their outcomes into status codes and JSON bodies.
package api

import (
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/aTrapDeer/portfolio-api/internal/config"
	"github.com/aTrapDeer/portfolio-api/internal/repository"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type Server struct {
	cfg *config.Config
	log zerolog.Logger

	projects *repository.ProjectRepository
	skills   *repository.SkillRepository
	contact  *repository.ContactRepository
	blog     *repository.BlogRepository
}

func New(cfg *config.Config, log zerolog.Logger, db *gorm.DB) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		projects: repository.NewProjectRepository(db),
		skills:   repository.NewSkillRepository(db),
		contact:  repository.NewContactRepository(db),
		blog:     repository.NewBlogRepository(db),
	}
}

// Handler builds the full middleware stack: request logging around CORS
// around the route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", s.login)

	mux.HandleFunc("GET /api/projects", s.listProjects)
	mux.HandleFunc("GET /api/projects/{id}", s.getProject)
	mux.HandleFunc("POST /api/projects", s.requireAuth(s.createProject))
	mux.HandleFunc("PUT /api/projects/{id}", s.requireAuth(s.updateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", s.requireAuth(s.deleteProject))

	mux.HandleFunc("GET /api/skills", s.listSkills)
	mux.HandleFunc("GET /api/skills/categories", s.listSkillCategories)
	mux.HandleFunc("GET /api/skills/{id}", s.getSkill)
	mux.HandleFunc("POST /api/skills", s.requireAuth(s.createSkill))
	mux.HandleFunc("PUT /api/skills/{id}", s.requireAuth(s.updateSkill))
	mux.HandleFunc("DELETE /api/skills/{id}", s.requireAuth(s.deleteSkill))

	mux.HandleFunc("GET /api/contact", s.requireAuth(s.listContactMessages))
	mux.HandleFunc("GET /api/contact/stats", s.requireAuth(s.contactStats))
	mux.HandleFunc("POST /api/contact", s.createContactMessage)
	mux.HandleFunc("PATCH /api/contact/{id}/read", s.requireAuth(s.markContactMessageRead))
	mux.HandleFunc("DELETE /api/contact/{id}", s.requireAuth(s.deleteContactMessage))

	mux.HandleFunc("GET /api/blog", s.listBlogPosts)
	mux.HandleFunc("GET /api/blog/{identifier}", s.getBlogPost)
	mux.HandleFunc("POST /api/blog", s.requireAuth(s.createBlogPost))
	mux.HandleFunc("PUT /api/blog/{id}", s.requireAuth(s.updateBlogPost))
	mux.HandleFunc("DELETE /api/blog/{id}", s.requireAuth(s.deleteBlogPost))
	mux.HandleFunc("PATCH /api/blog/{id}/publish", s.requireAuth(s.setBlogPostPublished))

	mux.HandleFunc("GET /api/health", s.health)

	mux.HandleFunc("/", s.notFound)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{s.cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return s.logRequests(c.Handler(mux))
}

// health reports process status without touching the storage layer, so it
// stays green even when the database is down.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusNotFound, map[string]string{
		"error":  "Route not found",
		"method": r.Method,
		"path":   r.URL.Path,
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
