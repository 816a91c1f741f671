package api

import (
	"net/http"

	"github.com/aTrapDeer/portfolio-api/internal/models"
	"github.com/aTrapDeer/portfolio-api/internal/repository"
)

func (s *Server) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	published := boolParam(r, "published")
	limit := intParam(r, "limit", repository.DefaultBlogLimit)
	offset := intParam(r, "offset", repository.DefaultBlogOffset)

	posts, err := s.blog.List(published, limit, offset)
	if err != nil {
		s.writeError(w, err, "", "Failed to fetch blog posts")
		return
	}
	s.respond(w, http.StatusOK, posts)
}

func (s *Server) getBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.blog.GetByIdentifier(r.PathValue("identifier"))
	if err != nil {
		s.writeError(w, err, "Blog post not found", "Failed to fetch blog post")
		return
	}
	s.respond(w, http.StatusOK, post)
}

func (s *Server) createBlogPost(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := decodeJSON(r, &post); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := s.blog.Create(&post)
	if err != nil {
		s.writeError(w, err, "", "Failed to create blog post")
		return
	}
	s.respond(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "Blog post created successfully",
	})
}

func (s *Server) updateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		var post models.BlogPost
		if err := decodeJSON(r, &post); err != nil {
			s.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		err = s.blog.Update(id, &post)
	}
	if err != nil {
		s.writeError(w, err, "Blog post not found", "Failed to update blog post")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"message": "Blog post updated successfully"})
}

func (s *Server) deleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		err = s.blog.Delete(id)
	}
	if err != nil {
		s.writeError(w, err, "Blog post not found", "Failed to delete blog post")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"message": "Blog post deleted successfully"})
}

// setBlogPostPublished sets the publish state from the request body. Despite
// the route name this is a set, not a toggle; an absent body unpublishes.
func (s *Server) setBlogPostPublished(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	var published bool
	if err == nil {
		var body struct {
			Published bool `json:"published"`
		}
		// body is optional; decode errors leave published false
		_ = decodeJSON(r, &body)
		published = body.Published
		err = s.blog.SetPublished(id, published)
	}
	if err != nil {
		s.writeError(w, err, "Blog post not found", "Failed to update publish status")
		return
	}

	msg := "Blog post unpublished successfully"
	if published {
		msg = "Blog post published successfully"
	}
	s.respond(w, http.StatusOK, map[string]string{"message": msg})
}
