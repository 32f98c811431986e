package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/vibpath/vibot/pkg/store"
)

// userPayload is the management API view of a stored preference
type userPayload struct {
	UserID         string    `json:"userId"`
	AIReplyEnabled bool      `json:"aiReplyEnabled"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// listUsersHandler returns every stored preference record
func (s *Server) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.prefs.List(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list preferences: %v", err)
		s.renderStoreError(w, r, err)
		return
	}

	users := make([]userPayload, 0, len(prefs))
	for _, pref := range prefs {
		users = append(users, userPayload{
			UserID:         pref.UserID,
			AIReplyEnabled: pref.AIReplyEnabled,
			LastUpdated:    pref.UpdatedAt,
		})
	}

	renderSuccess(w, r, http.StatusOK, map[string]interface{}{"users": users, "count": len(users)})
}

// getPreferenceHandler reports the effective preference for one user. Users
// without a stored record get the default, the store being down degrades to
// the default as well, so this never fails.
func (s *Server) getPreferenceHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	enabled := s.prefs.Enabled(r.Context(), userID)
	renderSuccess(w, r, http.StatusOK, map[string]interface{}{"userId": userID, "aiReplyEnabled": enabled})
}

// setPreferenceHandler stores the preference from the request body
func (s *Server) setPreferenceHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	// pointer field distinguishes a missing key from an explicit false
	var req struct {
		AIReplyEnabled *bool `json:"aiReplyEnabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.AIReplyEnabled == nil {
		renderError(w, r, errors.New("aiReplyEnabled field is required"), http.StatusBadRequest)
		return
	}

	if err := s.prefs.Set(r.Context(), userID, *req.AIReplyEnabled); err != nil {
		lgr.Printf("[ERROR] failed to set preference for %s: %v", userID, err)
		s.renderStoreError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, map[string]interface{}{"userId": userID, "aiReplyEnabled": *req.AIReplyEnabled})
}

// deletePreferenceHandler removes the stored preference, the user reverts to
// the default on the next lookup
func (s *Server) deletePreferenceHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	if _, err := s.prefs.Delete(r.Context(), userID); err != nil {
		lgr.Printf("[ERROR] failed to delete preference for %s: %v", userID, err)
		s.renderStoreError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, map[string]interface{}{"userId": userID, "reset": true})
}

// renderStoreError maps store failures to 503 for unreachable backends and
// 500 for everything else
func (s *Server) renderStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if store.IsUnavailable(err) {
		renderError(w, r, errors.New("preference store unavailable"), http.StatusServiceUnavailable)
		return
	}
	renderError(w, r, errors.New("preference store operation failed"), http.StatusInternalServerError)
}
