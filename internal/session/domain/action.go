package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
)

var (
	// ErrUnknownAction indicates an action type the reducer does not handle.
	ErrUnknownAction = errors.New("unknown action")
	// ErrIndexOutOfRange indicates an action addressing a missing build or enemy.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrRequiredStat indicates an attempt to clear a required build field.
	ErrRequiredStat = errors.New("stat is required")
	// ErrUnresolvedToken indicates a load action still carrying a share token.
	// Transports decode the token into a state before applying the action.
	ErrUnresolvedToken = errors.New("share token must be resolved before load")
	// ErrInvalidPayload indicates a missing or undecodable action payload.
	ErrInvalidPayload = errors.New("invalid action payload")
)

// ActionType identifies a state transition.
type ActionType string

const (
	ActionAddBuild          ActionType = "addBuild"
	ActionUpdateBuild       ActionType = "updateBuild"
	ActionSetBuildStat      ActionType = "setBuildStat"
	ActionRemoveBuild       ActionType = "removeBuild"
	ActionImportBuild       ActionType = "importBuild"
	ActionSetActiveBuildTab ActionType = "setActiveBuildTab"

	ActionAddEnemy          ActionType = "addEnemy"
	ActionUpdateEnemy       ActionType = "updateEnemy"
	ActionSetEnemyStat      ActionType = "setEnemyStat"
	ActionRemoveEnemy       ActionType = "removeEnemy"
	ActionImportEnemy       ActionType = "importEnemy"
	ActionSetActiveEnemyTab ActionType = "setActiveEnemyTab"

	ActionSetXAxisStat       ActionType = "setXAxisStat"
	ActionSetXAxisRange      ActionType = "setXAxisRange"
	ActionSetYMetric         ActionType = "setYMetric"
	ActionSetCombatType      ActionType = "setCombatType"
	ActionSetAttackDirection ActionType = "setAttackDirection"
	ActionSetPvP             ActionType = "setPvP"
	ActionSetSkillConfig     ActionType = "setSkillConfig"
	ActionSetSpeedLimiter    ActionType = "setSpeedLimiter"

	ActionClearAll ActionType = "clearAll"
	ActionLoad     ActionType = "load"
)

// Action is a JSON envelope carrying one state transition.
type Action struct {
	Type        ActionType      `json:"type"`
	PayloadJSON json.RawMessage `json:"payload,omitempty"`
}

// NewAction builds an action with payload encoded as JSON.
func NewAction(t ActionType, payload any) (Action, error) {
	if payload == nil {
		return Action{Type: t}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Action{}, fmt.Errorf("encode %s payload: %w", t, err)
	}
	return Action{Type: t, PayloadJSON: data}, nil
}

// IndexPayload addresses one build or enemy.
type IndexPayload struct {
	Index int `json:"index"`
}

// UpdatePayload merges the present fields of Record into the addressed
// record. A null stat removes it.
type UpdatePayload struct {
	Index  int             `json:"index"`
	Record json.RawMessage `json:"record"`
}

// StatPayload sets one stat of the addressed record. A nil value removes it.
type StatPayload struct {
	Index int         `json:"index"`
	Stat  combat.Stat `json:"stat"`
	Value *float64    `json:"value"`
}

// TabPayload selects the active tab.
type TabPayload struct {
	Tab int `json:"tab"`
}

// StatNamePayload selects the x-axis stat.
type StatNamePayload struct {
	Stat combat.Stat `json:"stat"`
}

// ValuePayload carries one enumerated setting.
type ValuePayload struct {
	Value string `json:"value"`
}

// PvPPayload toggles PvP.
type PvPPayload struct {
	PvP bool `json:"isPvP"`
}

// LoadPayload replaces the whole session. Exactly one of State and Token is
// expected; only State can be applied, and its omitted fields take the
// defaults of a fresh session.
type LoadPayload struct {
	State *State `json:"state,omitempty"`
	Token string `json:"token,omitempty"`
}

// Apply folds action into state. The input state is never mutated; on error
// the returned state is the input unchanged.
func Apply(state State, action Action) (State, error) {
	next := state.Clone()
	var err error
	switch action.Type {
	case ActionAddBuild:
		next.Builds = append(next.Builds, combat.DefaultBuild("Build "+strconv.Itoa(len(next.Builds)+1)))
		next.ActiveBuildTab = len(next.Builds) - 1
	case ActionUpdateBuild:
		var p UpdatePayload
		if err = decode(action, &p); err == nil {
			err = updateBuild(&next, p)
		}
	case ActionSetBuildStat:
		var p StatPayload
		if err = decode(action, &p); err == nil {
			err = setBuildStat(&next, p)
		}
	case ActionRemoveBuild:
		var p IndexPayload
		if err = decode(action, &p); err == nil {
			if err = checkIndex(p.Index, len(next.Builds)); err == nil {
				next.Builds = append(next.Builds[:p.Index], next.Builds[p.Index+1:]...)
				next.ActiveBuildTab = tabAfterRemove(next.ActiveBuildTab, p.Index, len(next.Builds))
			}
		}
	case ActionImportBuild:
		var b combat.Build
		if err = decode(action, &b); err == nil {
			next.Builds = append(next.Builds, b)
			next.ActiveBuildTab = len(next.Builds) - 1
		}
	case ActionSetActiveBuildTab:
		var p TabPayload
		if err = decode(action, &p); err == nil {
			next.ActiveBuildTab = p.Tab
		}

	case ActionAddEnemy:
		next.Enemies = append(next.Enemies, combat.DefaultEnemy("Enemy "+strconv.Itoa(len(next.Enemies)+1)))
		next.ActiveEnemyTab = len(next.Enemies) - 1
	case ActionUpdateEnemy:
		var p UpdatePayload
		if err = decode(action, &p); err == nil {
			err = updateEnemy(&next, p)
		}
	case ActionSetEnemyStat:
		var p StatPayload
		if err = decode(action, &p); err == nil {
			err = setEnemyStat(&next, p)
		}
	case ActionRemoveEnemy:
		var p IndexPayload
		if err = decode(action, &p); err == nil {
			if err = checkIndex(p.Index, len(next.Enemies)); err == nil {
				next.Enemies = append(next.Enemies[:p.Index], next.Enemies[p.Index+1:]...)
				next.ActiveEnemyTab = tabAfterRemove(next.ActiveEnemyTab, p.Index, len(next.Enemies))
			}
		}
	case ActionImportEnemy:
		var e combat.Enemy
		if err = decode(action, &e); err == nil {
			next.Enemies = append(next.Enemies, e)
			next.ActiveEnemyTab = len(next.Enemies) - 1
		}
	case ActionSetActiveEnemyTab:
		var p TabPayload
		if err = decode(action, &p); err == nil {
			next.ActiveEnemyTab = p.Tab
		}

	case ActionSetXAxisStat:
		var p StatNamePayload
		if err = decode(action, &p); err == nil {
			if combat.SideOf(p.Stat) == combat.SideUnknown {
				err = fmt.Errorf("%w: %q", combat.ErrUnknownStat, p.Stat)
			} else {
				next.XAxisStat = p.Stat
			}
		}
	case ActionSetXAxisRange:
		var r combat.Range
		if err = decode(action, &r); err == nil {
			if _, err = combat.XValues(r, r.Min); err == nil {
				next.XAxisRange = r
			}
		}
	case ActionSetYMetric:
		var p ValuePayload
		if err = decode(action, &p); err == nil {
			next.YMetric, err = combat.ParseMetric(p.Value)
		}
	case ActionSetCombatType:
		var p ValuePayload
		if err = decode(action, &p); err == nil {
			next.CombatType, err = combat.ParseCombatType(p.Value)
		}
	case ActionSetAttackDirection:
		var p ValuePayload
		if err = decode(action, &p); err == nil {
			next.Direction, err = combat.ParseDirection(p.Value)
		}
	case ActionSetPvP:
		var p PvPPayload
		if err = decode(action, &p); err == nil {
			next.PvP = p.PvP
		}
	case ActionSetSkillConfig:
		cfg := DefaultSkillConfig()
		if err = decode(action, &cfg); err == nil {
			next.Skill = cfg
		}
	case ActionSetSpeedLimiter:
		var p ValuePayload
		if err = decode(action, &p); err == nil {
			next.SpeedLimiter, err = combat.ParseSpeedLimiter(p.Value)
		}

	case ActionClearAll:
		next = clearAll(next)
	case ActionLoad:
		next, err = load(action)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}
	if err != nil {
		return state, err
	}
	return next, nil
}

// load replaces the session. Fields missing from the loaded state keep the
// values of a fresh session.
func load(action Action) (State, error) {
	var p struct {
		State json.RawMessage `json:"state"`
		Token string          `json:"token"`
	}
	if err := decode(action, &p); err != nil {
		return State{}, err
	}
	switch {
	case len(p.State) > 0 && string(p.State) != "null":
		s := Default()
		if err := json.Unmarshal(p.State, &s); err != nil {
			return State{}, fmt.Errorf("session apply %s: %w: %w", action.Type, ErrInvalidPayload, err)
		}
		return s, nil
	case p.Token != "":
		return State{}, ErrUnresolvedToken
	default:
		return Default(), nil
	}
}

func decode(action Action, target any) error {
	if len(action.PayloadJSON) == 0 {
		return fmt.Errorf("session apply %s: %w: payload is required", action.Type, ErrInvalidPayload)
	}
	if err := json.Unmarshal(action.PayloadJSON, target); err != nil {
		return fmt.Errorf("session apply %s: %w: %w", action.Type, ErrInvalidPayload, err)
	}
	return nil
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, length)
	}
	return nil
}

// tabAfterRemove keeps the active tab on the same record when an earlier
// record is removed, and clamps it into range otherwise.
func tabAfterRemove(active, removed, remaining int) int {
	switch {
	case remaining == 0:
		return 0
	case active >= remaining:
		return remaining - 1
	case active > removed:
		return active - 1
	}
	return active
}

// clearAll resets records and chart settings. PvP, the skill and the speed
// limiter survive.
func clearAll(s State) State {
	fresh := Default()
	fresh.PvP = s.PvP
	fresh.Skill = s.Skill
	fresh.SpeedLimiter = s.SpeedLimiter
	return fresh
}

func updateBuild(s *State, p UpdatePayload) error {
	if err := checkIndex(p.Index, len(s.Builds)); err != nil {
		return err
	}
	fields, err := patchFields(p.Record)
	if err != nil {
		return fmt.Errorf("session apply %s: %w", ActionUpdateBuild, err)
	}
	b := s.Builds[p.Index]
	if fields.name != nil {
		b.Name = *fields.name
	}
	for stat, value := range fields.stats {
		if value == nil {
			if stat == combat.StatMinDMG || stat == combat.StatMaxDMG {
				return fmt.Errorf("%w: %s", ErrRequiredStat, stat)
			}
			b = b.Without(stat)
			continue
		}
		b = b.With(stat, *value)
	}
	s.Builds[p.Index] = b
	return nil
}

func updateEnemy(s *State, p UpdatePayload) error {
	if err := checkIndex(p.Index, len(s.Enemies)); err != nil {
		return err
	}
	fields, err := patchFields(p.Record)
	if err != nil {
		return fmt.Errorf("session apply %s: %w", ActionUpdateEnemy, err)
	}
	e := s.Enemies[p.Index]
	if fields.name != nil {
		e.Name = *fields.name
	}
	for stat, value := range fields.stats {
		if stat == combat.StatMinDMG || stat == combat.StatMaxDMG {
			continue
		}
		if value == nil {
			e = e.Without(stat)
			continue
		}
		e = e.With(stat, *value)
	}
	s.Enemies[p.Index] = e
	return nil
}

func setBuildStat(s *State, p StatPayload) error {
	if err := checkIndex(p.Index, len(s.Builds)); err != nil {
		return err
	}
	if !combat.Known(p.Stat) {
		return fmt.Errorf("%w: %q", combat.ErrUnknownStat, p.Stat)
	}
	if p.Value == nil {
		if p.Stat == combat.StatMinDMG || p.Stat == combat.StatMaxDMG {
			return fmt.Errorf("%w: %s", ErrRequiredStat, p.Stat)
		}
		s.Builds[p.Index] = s.Builds[p.Index].Without(p.Stat)
		return nil
	}
	s.Builds[p.Index] = s.Builds[p.Index].With(p.Stat, *p.Value)
	return nil
}

func setEnemyStat(s *State, p StatPayload) error {
	if err := checkIndex(p.Index, len(s.Enemies)); err != nil {
		return err
	}
	if !combat.Known(p.Stat) || p.Stat == combat.StatMinDMG || p.Stat == combat.StatMaxDMG {
		return fmt.Errorf("%w: %q", combat.ErrUnknownStat, p.Stat)
	}
	if p.Value == nil {
		s.Enemies[p.Index] = s.Enemies[p.Index].Without(p.Stat)
		return nil
	}
	s.Enemies[p.Index] = s.Enemies[p.Index].With(p.Stat, *p.Value)
	return nil
}

type patch struct {
	name  *string
	stats map[combat.Stat]*float64
}

// patchFields reads the keys present in a partial record. Unknown keys are
// ignored, as they are when decoding whole records.
func patchFields(data json.RawMessage) (patch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return patch{}, err
	}
	p := patch{stats: make(map[combat.Stat]*float64, len(raw))}
	for key, value := range raw {
		if key == "name" {
			var name string
			if err := json.Unmarshal(value, &name); err != nil {
				return patch{}, fmt.Errorf("name: %w", err)
			}
			p.name = &name
			continue
		}
		stat := combat.Stat(key)
		if !combat.Known(stat) {
			continue
		}
		var v *float64
		if err := json.Unmarshal(value, &v); err != nil {
			return patch{}, fmt.Errorf("%s: %w", key, err)
		}
		p.stats[stat] = v
	}
	return p, nil
}
