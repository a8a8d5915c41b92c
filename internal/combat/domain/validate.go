package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeStat indicates a negative or non-finite stat value.
	ErrNegativeStat = errors.New("stat must be a non-negative number")
	// ErrInvalidDamageRange indicates a minimum damage above the maximum.
	ErrInvalidDamageRange = errors.New("min damage exceeds max damage")
)

// StatError reports which stat failed validation.
type StatError struct {
	Record string
	Stat   Stat
	Value  float64
	Err    error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("%s %s=%v: %v", e.Record, e.Stat, e.Value, e.Err)
}

func (e *StatError) Unwrap() error {
	return e.Err
}

func checkValue(record string, stat Stat, value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return &StatError{Record: record, Stat: stat, Value: value, Err: ErrNegativeStat}
	}
	return nil
}

// ValidateBuild rejects builds the formulas are not defined for.
// Calculate itself accepts anything; transports validate at the boundary.
func ValidateBuild(b Build) error {
	if err := checkValue("build", StatMinDMG, b.MinDMG); err != nil {
		return err
	}
	if err := checkValue("build", StatMaxDMG, b.MaxDMG); err != nil {
		return err
	}
	if b.MinDMG > b.MaxDMG {
		return &StatError{Record: "build", Stat: StatMinDMG, Value: b.MinDMG, Err: ErrInvalidDamageRange}
	}
	for _, stat := range b.Stats.Keys() {
		if err := checkValue("build", stat, b.Stats[stat]); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEnemy rejects enemies the formulas are not defined for.
func ValidateEnemy(e Enemy) error {
	for _, stat := range e.Stats.Keys() {
		if err := checkValue("enemy", stat, e.Stats[stat]); err != nil {
			return err
		}
	}
	return nil
}
