package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// requireAuth guards admin routes with a bearer JWT. When no admin
// credentials are configured the surface stays open, matching a development
// or single-operator deployment.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.AuthEnabled() {
			next(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.respondError(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			s.respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		token, err := jwt.Parse(bearerToken[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			s.respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next(w, r)
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.AuthEnabled() {
		s.respondError(w, http.StatusServiceUnavailable, "Authentication is not configured")
		return
	}

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &creds); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if creds.Email != s.cfg.AdminEmail {
		s.respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(creds.Password)); err != nil {
		s.respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": creds.Email,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	s.respond(w, http.StatusOK, map[string]string{"token": signed})
}
