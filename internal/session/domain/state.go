package domain

import (
	"fmt"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
)

// DefaultXAxisStat is the stat charted by a fresh session.
const DefaultXAxisStat = combat.StatMeleeEndurance

// SkillConfig is the skill under test together with its cast timing.
type SkillConfig struct {
	Potency        float64 `json:"skillPotency"`
	FlatAdd        float64 `json:"skillFlatAdd"`
	HitsPerCast    float64 `json:"hitsPerCast"`
	WeakenPotency  float64 `json:"weakenSkillPotency"`
	WeakenFlatAdd  float64 `json:"weakenSkillFlatAdd"`
	Cooldown       float64 `json:"cooldownTime"`
	CastTime       float64 `json:"castTime"`
	Specialization float64 `json:"skillCooldownSpecialization"`
}

// DefaultSkillConfig returns a single-hit potency 1 skill on a 10s cooldown.
func DefaultSkillConfig() SkillConfig {
	return SkillConfig{
		Potency:     1,
		HitsPerCast: 1,
		Cooldown:    10,
		CastTime:    1,
	}
}

// Skill returns the damage parameters of the skill.
func (c SkillConfig) Skill() combat.Skill {
	return combat.Skill{
		Potency:       c.Potency,
		FlatAdd:       c.FlatAdd,
		HitsPerCast:   c.HitsPerCast,
		WeakenPotency: c.WeakenPotency,
		WeakenFlatAdd: c.WeakenFlatAdd,
	}
}

// Timing returns the cast cycle of the skill under limiter.
func (c SkillConfig) Timing(limiter combat.SpeedLimiter) combat.Timing {
	return combat.Timing{
		Cooldown:       c.Cooldown,
		CastTime:       c.CastTime,
		Specialization: c.Specialization,
	}.Limited(limiter)
}

// State is one calculator session.
type State struct {
	Builds         []combat.Build      `json:"builds"`
	Enemies        []combat.Enemy      `json:"enemies"`
	XAxisStat      combat.Stat         `json:"xAxisStat"`
	XAxisRange     combat.Range        `json:"xAxisRange"`
	YMetric        combat.Metric       `json:"yMetric"`
	CombatType     combat.CombatType   `json:"combatType"`
	Direction      combat.Direction    `json:"attackDirection"`
	PvP            bool                `json:"isPvP"`
	Skill          SkillConfig         `json:"skillConfig"`
	ActiveBuildTab int                 `json:"activeBuildTab"`
	ActiveEnemyTab int                 `json:"activeEnemyTab"`
	SpeedLimiter   combat.SpeedLimiter `json:"speedLimiter"`
}

// Default returns the state of a fresh session.
func Default() State {
	return State{
		Builds:       []combat.Build{},
		Enemies:      []combat.Enemy{},
		XAxisStat:    DefaultXAxisStat,
		XAxisRange:   combat.DefaultRange(),
		YMetric:      combat.MetricExpectedDamage,
		CombatType:   combat.Melee,
		Direction:    combat.Front,
		PvP:          true,
		Skill:        DefaultSkillConfig(),
		SpeedLimiter: combat.LimitByCooldown,
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	builds := make([]combat.Build, len(s.Builds))
	for i, b := range s.Builds {
		builds[i] = b.Clone()
	}
	enemies := make([]combat.Enemy, len(s.Enemies))
	for i, e := range s.Enemies {
		enemies[i] = e.Clone()
	}
	s.Builds = builds
	s.Enemies = enemies
	return s
}

// Validate rejects states the engine cannot evaluate: negative stats,
// inverted damage ranges and unknown enum values.
func (s State) Validate() error {
	for _, b := range s.Builds {
		if err := combat.ValidateBuild(b); err != nil {
			return err
		}
	}
	for _, e := range s.Enemies {
		if err := combat.ValidateEnemy(e); err != nil {
			return err
		}
	}
	if combat.SideOf(s.XAxisStat) == combat.SideUnknown {
		return fmt.Errorf("%w: %q", combat.ErrUnknownStat, s.XAxisStat)
	}
	if _, err := combat.ParseMetric(string(s.YMetric)); err != nil {
		return err
	}
	if _, err := combat.ParseCombatType(string(s.CombatType)); err != nil {
		return err
	}
	if _, err := combat.ParseDirection(string(s.Direction)); err != nil {
		return err
	}
	if _, err := combat.ParseSpeedLimiter(string(s.SpeedLimiter)); err != nil {
		return err
	}
	return nil
}

// ActiveEnemy returns the enemy the session is charted against. A session
// without enemies fights the default target dummy.
func (s State) ActiveEnemy() combat.Enemy {
	if len(s.Enemies) == 0 {
		return combat.DefaultEnemy(combat.DefaultEnemyName)
	}
	if s.ActiveEnemyTab >= 0 && s.ActiveEnemyTab < len(s.Enemies) {
		return s.Enemies[s.ActiveEnemyTab]
	}
	return s.Enemies[0]
}

// Context returns the combat context of the session.
func (s State) Context() combat.Context {
	return combat.Context{
		CombatType: s.CombatType,
		Direction:  s.Direction,
		PvP:        s.PvP,
		Skill:      s.Skill.Skill(),
	}
}

// Timing returns the cast cycle of the session's skill.
func (s State) Timing() combat.Timing {
	return s.Skill.Timing(s.SpeedLimiter)
}

// SweepRequest returns the chart the session describes.
func (s State) SweepRequest() combat.SweepRequest {
	return combat.SweepRequest{
		Builds:  s.Builds,
		Enemy:   s.ActiveEnemy(),
		Stat:    s.XAxisStat,
		Range:   s.XAxisRange,
		Metric:  s.YMetric,
		Context: s.Context(),
		Timing:  s.Timing(),
	}
}

// BuildResult is the evaluation of one build against the active enemy.
type BuildResult struct {
	Build  string           `json:"build"`
	Damage combat.Breakdown `json:"damage"`
	DPS    combat.DPS       `json:"dps"`
}

// Summary evaluates every build of the session against the active enemy.
type Summary struct {
	Enemy   string        `json:"enemy"`
	Results []BuildResult `json:"results"`
}

// Summarize evaluates the session.
func Summarize(s State) Summary {
	enemy := s.ActiveEnemy()
	ctx := s.Context()
	timing := s.Timing()
	results := make([]BuildResult, 0, len(s.Builds))
	for _, b := range s.Builds {
		dps := combat.CalculateDPS(b, enemy, ctx, timing)
		results = append(results, BuildResult{
			Build:  b.Name,
			Damage: dps.Damage,
			DPS:    dps,
		})
	}
	return Summary{Enemy: enemy.Name, Results: results}
}
