package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	session "github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/session/share"
)

// saveRequest names a session and carries its state as a share token or
// inline. An inline state starts from the defaults, so partial states are
// accepted.
type saveRequest struct {
	Name  string          `json:"name"`
	Token string          `json:"token"`
	State json.RawMessage `json:"state"`
}

type sessionListResponse struct {
	Sessions      []session.Saved `json:"sessions"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
}

func (h *handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token := req.Token
	if token != "" {
		if _, err := share.Decode(token); err != nil {
			writeError(w, r, err)
			return
		}
	} else if len(req.State) > 0 && string(req.State) != "null" {
		state := session.Default()
		if err := json.Unmarshal(req.State, &state); err != nil {
			writeError(w, r, invalidRequest("state is not a session state"))
			return
		}
		if err := state.Validate(); err != nil {
			writeError(w, r, err)
			return
		}
		encoded, err := share.Encode(state)
		if err != nil {
			writeError(w, r, err)
			return
		}
		token = encoded
	}

	saved, err := session.NewSaved(session.SaveInput{Name: req.Name, Token: token}, h.now, h.newID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sessions.PutSession(r.Context(), saved); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pageSize := 0
	if raw := query.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, invalidRequest("pageSize must be an integer"))
			return
		}
		pageSize = n
	}

	page, err := h.sessions.ListSessions(r.Context(), pageSize, query.Get("pageToken"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	sessions := page.Sessions
	if sessions == nil {
		sessions = []session.Saved{}
	}
	writeJSON(w, http.StatusOK, sessionListResponse{Sessions: sessions, NextPageToken: page.NextPageToken})
}

func (h *handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	saved, err := h.sessions.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.DeleteSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
