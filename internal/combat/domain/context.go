package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCombatType indicates a combat type outside melee/ranged/magic.
	ErrUnknownCombatType = errors.New("unknown combat type")
	// ErrUnknownDirection indicates an attack direction outside front/side/back.
	ErrUnknownDirection = errors.New("unknown attack direction")
)

// CombatType selects which rating triple participates in a calculation.
type CombatType string

const (
	Melee  CombatType = "melee"
	Ranged CombatType = "ranged"
	Magic  CombatType = "magic"
)

// ParseCombatType parses a combat type name, case-insensitively.
func ParseCombatType(value string) (CombatType, error) {
	switch ct := CombatType(strings.ToLower(strings.TrimSpace(value))); ct {
	case Melee, Ranged, Magic:
		return ct, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCombatType, value)
}

// Direction is the attacker's position relative to the defender.
type Direction string

const (
	Front Direction = "front"
	Side  Direction = "side"
	Back  Direction = "back"
)

// ParseDirection parses an attack direction name, case-insensitively.
func ParseDirection(value string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(value))); d {
	case Front, Side, Back:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, value)
}

// Skill holds the per-skill parameters of the damage formula.
type Skill struct {
	Potency       float64 `json:"skillPotency"`
	FlatAdd       float64 `json:"skillFlatAdd"`
	HitsPerCast   float64 `json:"hitsPerCast"`
	WeakenPotency float64 `json:"weakenSkillPotency"`
	WeakenFlatAdd float64 `json:"weakenSkillFlatAdd"`
}

// DefaultSkill returns a plain single-hit skill with potency 1.
func DefaultSkill() Skill {
	return Skill{Potency: 1, HitsPerCast: 1}
}

// normalized replaces the meaningless zero potency and zero hit count with 1.
func (s Skill) normalized() Skill {
	if s.Potency == 0 {
		s.Potency = 1
	}
	if s.HitsPerCast == 0 {
		s.HitsPerCast = 1
	}
	return s
}

// Context bundles the situational inputs of one calculation.
type Context struct {
	CombatType CombatType
	Direction  Direction
	PvP        bool
	Skill      Skill
}

// DefaultContext returns a frontal melee PvP context with a plain skill.
func DefaultContext() Context {
	return Context{
		CombatType: Melee,
		Direction:  Front,
		PvP:        true,
		Skill:      DefaultSkill(),
	}
}
