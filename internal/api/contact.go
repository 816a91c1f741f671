package api

import (
	"net"
	"net/http"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

func (s *Server) listContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.contact.List(boolParam(r, "is_read"))
	if err != nil {
		s.writeError(w, err, "", "Failed to fetch contact messages")
		return
	}
	s.respond(w, http.StatusOK, messages)
}

func (s *Server) createContactMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := models.ContactMessage{
		Name:      body.Name,
		Email:     body.Email,
		Subject:   body.Subject,
		Message:   body.Message,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	}
	id, err := s.contact.Create(&message)
	if err != nil {
		s.writeError(w, err, "", "Failed to create contact message")
		return
	}
	s.respond(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "Contact message sent successfully",
	})
}

func (s *Server) markContactMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		err = s.contact.MarkRead(id)
	}
	if err != nil {
		s.writeError(w, err, "Contact message not found", "Failed to mark message as read")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"message": "Message marked as read"})
}

func (s *Server) deleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err == nil {
		err = s.contact.Delete(id)
	}
	if err != nil {
		s.writeError(w, err, "Contact message not found", "Failed to delete contact message")
		return
	}
	s.respond(w, http.StatusOK, map[string]string{"message": "Contact message deleted successfully"})
}

func (s *Server) contactStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.contact.Stats()
	if err != nil {
		s.writeError(w, err, "", "Failed to get statistics")
		return
	}
	s.respond(w, http.StatusOK, stats)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
