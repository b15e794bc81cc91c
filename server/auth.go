package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/newsgate/pkg/auth"
)

type contextKey string

const subjectKey contextKey = "subject"

// tokenRequest is the body of token request, both fields must be present
type tokenRequest struct {
	ClientID     *string `json:"client_id"`
	ClientSecret *string `json:"client_secret"`
}

// tokenHandler exchanges client credentials for an access token
func (s *Server) tokenHandler(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		lgr.Printf("[DEBUG] bad token request: %v", err)
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ClientID == nil || req.ClientSecret == nil {
		renderError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.auth.Issue(*req.ClientID, *req.ClientSecret)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			renderInternalError(w, r, err)
			return
		}
		lgr.Printf("[WARN] rejected token request for client %q", *req.ClientID)
		w.Header().Set("WWW-Authenticate", "Bearer")
		renderError(w, r, http.StatusUnauthorized, "Incorrect client credentials")
		return
	}

	renderJSON(w, r, http.StatusOK, rest.JSON{
		"access_token": token.AccessToken,
		"token_type":   "Bearer",
		"expires_in":   int(s.auth.TTL().Seconds()),
	})
}

// authMiddleware rejects requests without a valid bearer token
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			renderError(w, r, http.StatusUnauthorized, "Not authenticated")
			return
		}

		subject, err := s.auth.Verify(token)
		if err != nil {
			lgr.Printf("[DEBUG] token rejected for %s %s: %v", r.Method, r.URL.Path, err)
			w.Header().Set("WWW-Authenticate", "Bearer")
			renderError(w, r, http.StatusUnauthorized, "Invalid authentication credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey, subject)))
	})
}

// bearerToken extracts token from authorization header, scheme is case-insensitive
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// SubjectFromContext returns the verified token subject
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}
