package server

import (
	"net/http"

	"github.com/louisbranch/tnl-dmg-calc/internal/importer/statsheet"
)

type importRequest struct {
	Text string `json:"text"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func (h *handler) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Kind == "" {
		req.Kind = string(statsheet.KindBuild)
	}
	kind, err := statsheet.ParseKind(req.Kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := statsheet.Import(req.Text, req.Name, kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
