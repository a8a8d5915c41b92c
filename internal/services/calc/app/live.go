package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/errors/i18n"
	"github.com/louisbranch/tnl-dmg-calc/internal/platform/timeouts"
	session "github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
	"github.com/louisbranch/tnl-dmg-calc/internal/session/share"
)

const (
	liveFrameState = "state"
	liveFrameError = "error"

	maxLiveFrameBytes = DefaultMaxBodyBytes
)

// liveFrame is pushed to the client after the connection opens and after
// every inbound action. A state frame whose chart could not be sampled
// carries the chart error alongside the state.
type liveFrame struct {
	Type    string           `json:"type"`
	State   *session.State   `json:"state,omitempty"`
	Token   string           `json:"token,omitempty"`
	Chart   *combat.Chart    `json:"chart,omitempty"`
	Summary *session.Summary `json:"summary,omitempty"`
	Error   *errorBody       `json:"error,omitempty"`
}

// liveSession owns the state of one live connection. Frames are read and
// written by the connection goroutine only; the pinger only sends control
// frames, which gorilla allows concurrently with WriteMessage.
type liveSession struct {
	conn    *websocket.Conn
	state   session.State
	catalog *i18n.Catalog
}

func (h *handler) handleLive(w http.ResponseWriter, r *http.Request) {
	initial := session.Default()
	if token := r.URL.Query().Get("token"); token != "" {
		decoded, err := share.Decode(token)
		if err == nil {
			err = decoded.Validate()
		}
		if err != nil {
			writeError(w, r, err)
			return
		}
		initial = decoded
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("calc: live upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	s := &liveSession{conn: conn, state: initial, catalog: catalogFor(r)}
	conn.SetReadLimit(maxLiveFrameBytes)
	_ = conn.SetReadDeadline(time.Now().Add(timeouts.LivePong))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(timeouts.LivePong))
	})

	done := make(chan struct{})
	defer close(done)
	go s.ping(done)

	if err := s.push(); err != nil {
		return
	}
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("calc: live read from %s: %v", r.RemoteAddr, err)
			}
			return
		}
		if err := s.handle(payload); err != nil {
			if writeErr := s.writeError(err); writeErr != nil {
				return
			}
			continue
		}
		if err := s.push(); err != nil {
			return
		}
	}
}

// handle applies one inbound action envelope. A load carrying a share token
// is resolved here, since the reducer only accepts decoded states.
func (s *liveSession) handle(payload []byte) error {
	var action session.Action
	if err := json.Unmarshal(payload, &action); err != nil {
		return invalidRequest("frame is not an action envelope")
	}
	if action.Type == session.ActionLoad {
		resolved, err := resolveLoad(action)
		if err != nil {
			return err
		}
		action = resolved
	}

	next, err := session.Apply(s.state, action)
	if err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	s.state = next
	return nil
}

func resolveLoad(action session.Action) (session.Action, error) {
	if len(action.PayloadJSON) == 0 {
		return action, nil
	}
	var p session.LoadPayload
	if err := json.Unmarshal(action.PayloadJSON, &p); err != nil {
		return action, errors.Join(session.ErrInvalidPayload, err)
	}
	if p.Token == "" {
		return action, nil
	}
	decoded, err := share.Decode(p.Token)
	if err != nil {
		return action, err
	}
	return session.NewAction(session.ActionLoad, session.LoadPayload{State: &decoded})
}

func (s *liveSession) push() error {
	frame := liveFrame{Type: liveFrameState, State: &s.state}
	token, err := share.Encode(s.state)
	if err != nil {
		return err
	}
	frame.Token = token

	if resp, err := evaluate(s.state); err != nil {
		_, body := localize(err, s.catalog)
		frame.Error = &body.Error
		summary := session.Summarize(s.state)
		frame.Summary = &summary
	} else {
		frame.Chart = &resp.Chart
		frame.Summary = &resp.Summary
	}
	return s.write(frame)
}

func (s *liveSession) writeError(err error) error {
	_, body := localize(err, s.catalog)
	return s.write(liveFrame{Type: liveFrameError, Error: &body.Error})
}

func (s *liveSession) write(frame liveFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("calc: marshal live frame: %v", err)
		return err
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(timeouts.WriteMessage))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *liveSession) ping(done <-chan struct{}) {
	ticker := time.NewTicker(timeouts.LivePing)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(timeouts.WriteMessage)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}
