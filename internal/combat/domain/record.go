package domain

import (
	"encoding/json"
	"fmt"
)

// Build is an attacker profile. Only Name and the main-hand damage range are
// required; every other field lives in Stats.
type Build struct {
	Name   string
	MinDMG float64
	MaxDMG float64
	Stats  Stats
}

// Enemy is a defender profile.
type Enemy struct {
	Name  string
	Stats Stats
}

// DefaultBuild returns the profile a freshly added build starts from.
func DefaultBuild(name string) Build {
	return Build{
		Name:   name,
		MinDMG: 100,
		MaxDMG: 200,
		Stats: Stats{
			StatMeleeCritical:     1000,
			StatRangedCritical:    1000,
			StatMagicCritical:     1000,
			StatCriticalDamage:    50,
			StatMeleeHeavyAttack:  500,
			StatRangedHeavyAttack: 500,
			StatMagicHeavyAttack:  500,
			StatMeleeHit:          2000,
			StatRangedHit:         2000,
			StatMagicHit:          2000,
			StatSkillDamageBoost:  0,
			StatBonusDamage:       0,
			StatAttackSpeedTime:   1,
		},
	}
}

// DefaultEnemyName names the enemy used when a session has none.
const DefaultEnemyName = "Target Dummy"

// DefaultEnemy returns the profile a freshly added enemy starts from.
func DefaultEnemy(name string) Enemy {
	return Enemy{
		Name: name,
		Stats: Stats{
			StatMeleeEndurance:           1000,
			StatRangedEndurance:          1000,
			StatMagicEndurance:           1000,
			StatMeleeEvasion:             0,
			StatRangedEvasion:            0,
			StatMagicEvasion:             0,
			StatMeleeHeavyAttackEvasion:  0,
			StatRangedHeavyAttackEvasion: 0,
			StatMagicHeavyAttackEvasion:  0,
			StatMeleeDefense:             500,
			StatRangedDefense:            500,
			StatMagicDefense:             500,
			StatDamageReduction:          0,
			StatSkillDamageResistance:    0,
		},
	}
}

// Clone returns a deep copy.
func (b Build) Clone() Build {
	b.Stats = b.Stats.Clone()
	return b
}

// Value returns the current value of stat, including the required damage range.
func (b Build) Value(stat Stat) float64 {
	switch stat {
	case StatMinDMG:
		return b.MinDMG
	case StatMaxDMG:
		return b.MaxDMG
	}
	return b.Stats.Get(stat)
}

// Has reports whether stat is present on the build.
func (b Build) Has(stat Stat) bool {
	if stat == StatMinDMG || stat == StatMaxDMG {
		return true
	}
	_, ok := b.Stats.Lookup(stat)
	return ok
}

// With returns a copy of the build with stat set to value.
func (b Build) With(stat Stat, value float64) Build {
	switch stat {
	case StatMinDMG:
		b.MinDMG = value
		b.Stats = b.Stats.Clone()
	case StatMaxDMG:
		b.MaxDMG = value
		b.Stats = b.Stats.Clone()
	default:
		b.Stats = b.Stats.with(stat, value)
	}
	return b
}

// Without returns a copy of the build with stat removed.
func (b Build) Without(stat Stat) Build {
	b.Stats = b.Stats.Clone()
	delete(b.Stats, stat)
	return b
}

// Clone returns a deep copy.
func (e Enemy) Clone() Enemy {
	e.Stats = e.Stats.Clone()
	return e
}

// Value returns the current value of stat.
func (e Enemy) Value(stat Stat) float64 {
	return e.Stats.Get(stat)
}

// Has reports whether stat is present on the enemy.
func (e Enemy) Has(stat Stat) bool {
	_, ok := e.Stats.Lookup(stat)
	return ok
}

// With returns a copy of the enemy with stat set to value.
func (e Enemy) With(stat Stat, value float64) Enemy {
	e.Stats = e.Stats.with(stat, value)
	return e
}

// Without returns a copy of the enemy with stat removed.
func (e Enemy) Without(stat Stat) Enemy {
	e.Stats = e.Stats.Clone()
	delete(e.Stats, stat)
	return e
}

// MarshalJSON encodes the build as a flat object keyed by stat name.
func (b Build) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Stats)+3)
	for k, v := range b.Stats {
		out[string(k)] = v
	}
	out["name"] = b.Name
	out[string(StatMinDMG)] = b.MinDMG
	out[string(StatMaxDMG)] = b.MaxDMG
	return json.Marshal(out)
}

// UnmarshalJSON decodes a flat object. Unknown keys are ignored.
func (b *Build) UnmarshalJSON(data []byte) error {
	name, stats, err := decodeRecord(data)
	if err != nil {
		return fmt.Errorf("decode build: %w", err)
	}
	b.Name = name
	b.MinDMG = stats[StatMinDMG]
	b.MaxDMG = stats[StatMaxDMG]
	delete(stats, StatMinDMG)
	delete(stats, StatMaxDMG)
	b.Stats = stats
	return nil
}

// MarshalJSON encodes the enemy as a flat object keyed by stat name.
func (e Enemy) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Stats)+1)
	for k, v := range e.Stats {
		out[string(k)] = v
	}
	out["name"] = e.Name
	return json.Marshal(out)
}

// UnmarshalJSON decodes a flat object. Unknown keys are ignored.
func (e *Enemy) UnmarshalJSON(data []byte) error {
	name, stats, err := decodeRecord(data)
	if err != nil {
		return fmt.Errorf("decode enemy: %w", err)
	}
	delete(stats, StatMinDMG)
	delete(stats, StatMaxDMG)
	e.Name = name
	e.Stats = stats
	return nil
}

func decodeRecord(data []byte) (string, Stats, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, err
	}
	var name string
	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &name); err != nil {
			return "", nil, fmt.Errorf("name: %w", err)
		}
	}
	stats := Stats{}
	for key, v := range raw {
		stat := Stat(key)
		if !Known(stat) {
			continue
		}
		if string(v) == "null" {
			continue
		}
		var value float64
		if err := json.Unmarshal(v, &value); err != nil {
			return "", nil, fmt.Errorf("%s: %w", key, err)
		}
		stats[stat] = value
	}
	return name, stats, nil
}
