package server

import (
	"net/http"

	"github.com/gorilla/mux"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
	session "github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/session/share"
)

// calcRequest is one build against one enemy. Omitted settings take the
// defaults of a fresh session; an omitted enemy is the target dummy.
type calcRequest struct {
	Build        combat.Build         `json:"build"`
	Enemy        *combat.Enemy        `json:"enemy"`
	CombatType   string               `json:"combatType"`
	Direction    string               `json:"attackDirection"`
	PvP          *bool                `json:"isPvP"`
	Skill        *session.SkillConfig `json:"skillConfig"`
	SpeedLimiter string               `json:"speedLimiter"`
	Explain      bool                 `json:"explain"`
}

type calcInput struct {
	build   combat.Build
	enemy   combat.Enemy
	ctx     combat.Context
	timing  combat.Timing
	explain bool
}

func (req calcRequest) resolve() (calcInput, error) {
	s := session.Default()
	s.Builds = []combat.Build{req.Build}
	if req.Enemy != nil {
		s.Enemies = []combat.Enemy{*req.Enemy}
	}
	if req.CombatType != "" {
		s.CombatType = combat.CombatType(req.CombatType)
	}
	if req.Direction != "" {
		s.Direction = combat.Direction(req.Direction)
	}
	if req.PvP != nil {
		s.PvP = *req.PvP
	}
	if req.Skill != nil {
		s.Skill = *req.Skill
	}
	if req.SpeedLimiter != "" {
		s.SpeedLimiter = combat.SpeedLimiter(req.SpeedLimiter)
	}
	if err := s.Validate(); err != nil {
		return calcInput{}, err
	}
	return calcInput{
		build:   req.Build,
		enemy:   s.ActiveEnemy(),
		ctx:     s.Context(),
		timing:  s.Timing(),
		explain: req.Explain,
	}, nil
}

type damageResponse struct {
	Damage combat.Breakdown `json:"damage"`
	Steps  []combat.Step    `json:"steps,omitempty"`
}

func (h *handler) handleDamage(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := req.resolve()
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := damageResponse{Damage: combat.Calculate(in.build, in.enemy, in.ctx)}
	if in.explain {
		resp.Steps = combat.Explain(resp.Damage, in.ctx.PvP, catalogFor(r).Tag())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleDPS(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in, err := req.resolve()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, combat.CalculateDPS(in.build, in.enemy, in.ctx, in.timing))
}

// stateRequest carries a session either inline or as a share token.
type stateRequest struct {
	State *session.State `json:"state"`
	Token string         `json:"token"`
}

func (req stateRequest) resolve() (session.State, error) {
	s := session.Default()
	switch {
	case req.Token != "":
		decoded, err := share.Decode(req.Token)
		if err != nil {
			return session.State{}, err
		}
		s = decoded
	case req.State != nil:
		s = *req.State
	}
	if err := s.Validate(); err != nil {
		return session.State{}, err
	}
	return s, nil
}

// decodeState decodes a stateRequest whose inline state starts from the
// defaults, so partial states are accepted.
func (h *handler) decodeState(w http.ResponseWriter, r *http.Request) (session.State, error) {
	base := session.Default()
	req := stateRequest{State: &base}
	if err := h.decodeJSON(w, r, &req); err != nil {
		return session.State{}, err
	}
	return req.resolve()
}

type chartResponse struct {
	Chart   combat.Chart    `json:"chart"`
	Summary session.Summary `json:"summary"`
}

func (h *handler) handleChart(w http.ResponseWriter, r *http.Request) {
	s, err := h.decodeState(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := evaluate(s)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func evaluate(s session.State) (chartResponse, error) {
	chart, err := combat.Sweep(s.SweepRequest())
	if err != nil {
		return chartResponse{}, err
	}
	return chartResponse{Chart: chart, Summary: session.Summarize(s)}, nil
}

type shareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

func (h *handler) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	s, err := h.decodeState(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	token, err := share.Encode(s)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{Token: token, URL: share.Link(h.baseURL, token)})
}

func (h *handler) handleResolveShare(w http.ResponseWriter, r *http.Request) {
	s, err := share.Decode(mux.Vars(r)["token"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
