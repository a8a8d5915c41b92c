// Package share encodes calculator sessions as compact URL-safe tokens.
//
// A token is the session minified to short keys, written as JSON, compressed
// with raw DEFLATE and encoded as unpadded URL-safe base64. Values equal to
// their documented default are left out and restored on decode.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
	session "github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
)

// ErrMalformedToken indicates a token that does not decode to a session.
var ErrMalformedToken = errors.New("malformed share token")

// MaxDecodedSize caps the inflated size of a token.
const MaxDecodedSize = 1 << 20

var encoding = base64.RawURLEncoding

type wireState struct {
	Builds    []map[string]any   `json:"b,omitempty"`
	Enemies   []map[string]any   `json:"es,omitempty"`
	XAxisStat string             `json:"x,omitempty"`
	XRange    []float64          `json:"xr,omitempty"`
	YMetric   string             `json:"y,omitempty"`
	Combat    string             `json:"c,omitempty"`
	Direction string             `json:"ad,omitempty"`
	PvP       *int               `json:"p,omitempty"`
	Skill     map[string]float64 `json:"s,omitempty"`
	BuildTab  int                `json:"t,omitempty"`
	EnemyTab  int                `json:"et,omitempty"`
	Limiter   string             `json:"sl,omitempty"`
}

// Encode returns the share token of state.
func Encode(state session.State) (string, error) {
	data, err := json.Marshal(minify(state))
	if err != nil {
		return "", fmt.Errorf("encode share state: %w", err)
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create compressor: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return "", fmt.Errorf("compress share state: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("compress share state: %w", err)
	}
	return encoding.EncodeToString(buf.Bytes()), nil
}

// Decode expands a share token. Every failure wraps ErrMalformedToken.
func Decode(token string) (session.State, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "#"))
	if token == "" {
		return session.State{}, fmt.Errorf("%w: empty token", ErrMalformedToken)
	}
	compressed, err := encoding.DecodeString(token)
	if err != nil {
		return session.State{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	data, err := io.ReadAll(io.LimitReader(r, MaxDecodedSize+1))
	if err != nil {
		return session.State{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if len(data) > MaxDecodedSize {
		return session.State{}, fmt.Errorf("%w: state exceeds %d bytes", ErrMalformedToken, MaxDecodedSize)
	}

	var wire wireState
	if err := json.Unmarshal(data, &wire); err != nil {
		return session.State{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	state, err := expand(wire)
	if err != nil {
		return session.State{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return state, nil
}

// Link appends token to baseURL as a fragment.
func Link(baseURL, token string) string {
	base, _, _ := strings.Cut(baseURL, "#")
	return base + "#" + token
}

func minify(s session.State) wireState {
	var w wireState
	for _, b := range s.Builds {
		w.Builds = append(w.Builds, minifyBuild(b))
	}
	for _, e := range s.Enemies {
		w.Enemies = append(w.Enemies, minifyRecord(e.Name, e.Stats, enemyFields))
	}
	if s.XAxisStat != session.DefaultXAxisStat {
		w.XAxisStat = string(s.XAxisStat)
	}
	if s.XAxisRange != combat.DefaultRange() {
		w.XRange = []float64{s.XAxisRange.Min, s.XAxisRange.Max, s.XAxisRange.Step}
	}
	if s.YMetric != combat.MetricExpectedDamage {
		w.YMetric = string(s.YMetric)
	}
	if s.CombatType != combat.Melee {
		w.Combat = string(s.CombatType)
	}
	if s.Direction != combat.Front {
		w.Direction = string(s.Direction)
	}
	if !s.PvP {
		off := 0
		w.PvP = &off
	}
	skill := s.Skill
	for _, f := range skillFields {
		if v := *f.value(&skill); v != f.def {
			if w.Skill == nil {
				w.Skill = make(map[string]float64)
			}
			w.Skill[f.key] = v
		}
	}
	w.BuildTab = s.ActiveBuildTab
	w.EnemyTab = s.ActiveEnemyTab
	if s.SpeedLimiter != combat.LimitByCooldown {
		w.Limiter = string(s.SpeedLimiter)
	}
	return w
}

func minifyBuild(b combat.Build) map[string]any {
	out := minifyRecord(b.Name, b.Stats, buildFields)
	if b.MinDMG != defaultMinDMG {
		out[keyMinDMG] = b.MinDMG
	}
	if b.MaxDMG != defaultMaxDMG {
		out[keyMaxDMG] = b.MaxDMG
	}
	return out
}

// minifyRecord keeps present values that differ from their default. Stats
// without a short key are not shared.
func minifyRecord(name string, stats combat.Stats, fields []field) map[string]any {
	out := map[string]any{keyName: name}
	for _, f := range fields {
		v, ok := stats.Lookup(f.stat)
		if !ok || (f.hasDef && v == f.def) {
			continue
		}
		out[f.key] = v
	}
	return out
}

func expand(w wireState) (session.State, error) {
	s := session.Default()
	for i, raw := range w.Builds {
		b, err := expandBuild(raw)
		if err != nil {
			return session.State{}, fmt.Errorf("build %d: %w", i, err)
		}
		s.Builds = append(s.Builds, b)
	}
	for i, raw := range w.Enemies {
		name, stats, err := expandRecord(raw, enemyFields, defaultEnemyName)
		if err != nil {
			return session.State{}, fmt.Errorf("enemy %d: %w", i, err)
		}
		s.Enemies = append(s.Enemies, combat.Enemy{Name: name, Stats: stats})
	}

	if w.XAxisStat != "" {
		stat := combat.Stat(w.XAxisStat)
		if combat.SideOf(stat) == combat.SideUnknown {
			return session.State{}, fmt.Errorf("%w: %q", combat.ErrUnknownStat, w.XAxisStat)
		}
		s.XAxisStat = stat
	}
	if w.XRange != nil {
		if len(w.XRange) != 3 {
			return session.State{}, fmt.Errorf("x range has %d values, want 3", len(w.XRange))
		}
		s.XAxisRange = combat.Range{Min: w.XRange[0], Max: w.XRange[1], Step: w.XRange[2]}
	}
	var err error
	if w.YMetric != "" {
		if s.YMetric, err = combat.ParseMetric(w.YMetric); err != nil {
			return session.State{}, err
		}
	}
	if w.Combat != "" {
		if s.CombatType, err = combat.ParseCombatType(w.Combat); err != nil {
			return session.State{}, err
		}
	}
	if w.Direction != "" {
		if s.Direction, err = combat.ParseDirection(w.Direction); err != nil {
			return session.State{}, err
		}
	}
	s.PvP = w.PvP == nil || *w.PvP != 0
	for _, f := range skillFields {
		if v, ok := w.Skill[f.key]; ok {
			*f.value(&s.Skill) = v
		}
	}
	s.ActiveBuildTab = w.BuildTab
	s.ActiveEnemyTab = w.EnemyTab
	if w.Limiter != "" {
		if s.SpeedLimiter, err = combat.ParseSpeedLimiter(w.Limiter); err != nil {
			return session.State{}, err
		}
	}
	return s, nil
}

func expandBuild(raw map[string]any) (combat.Build, error) {
	name, stats, err := expandRecord(raw, buildFields, defaultBuildName)
	if err != nil {
		return combat.Build{}, err
	}
	b := combat.Build{Name: name, MinDMG: defaultMinDMG, MaxDMG: defaultMaxDMG, Stats: stats}
	for key, target := range map[string]*float64{keyMinDMG: &b.MinDMG, keyMaxDMG: &b.MaxDMG} {
		v, ok, err := number(raw, key)
		if err != nil {
			return combat.Build{}, err
		}
		if ok {
			*target = v
		}
	}
	return b, nil
}

// expandRecord restores defaults for absent keys that have one and leaves
// the rest absent.
func expandRecord(raw map[string]any, fields []field, defaultName string) (string, combat.Stats, error) {
	name := defaultName
	if v, ok := raw[keyName]; ok && v != nil {
		s, isString := v.(string)
		if !isString {
			return "", nil, fmt.Errorf("name is %T, want string", v)
		}
		if s != "" {
			name = s
		}
	}

	stats := combat.Stats{}
	for _, f := range fields {
		v, ok, err := number(raw, f.key)
		if err != nil {
			return "", nil, err
		}
		switch {
		case ok:
			stats[f.stat] = v
		case f.hasDef:
			stats[f.stat] = f.def
		}
	}
	return name, stats, nil
}

func number(raw map[string]any, key string) (float64, bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	n, isNumber := v.(float64)
	if !isNumber {
		return 0, false, fmt.Errorf("%s is %T, want number", key, v)
	}
	return n, true, nil
}
