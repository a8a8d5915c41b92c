package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownSpeedLimiter indicates a speed limiter other than cooldown or castTime.
var ErrUnknownSpeedLimiter = errors.New("unknown speed limiter")

// BaseAttackSpeed is the nominal attack interval, in seconds, that skill cast
// times are quoted against.
const BaseAttackSpeed = 1.0

// CooldownSaturation is the saturation constant of the cooldown speed curve.
const CooldownSaturation = 100

// ActualCastTime scales a nominal cast time by the attacker's attack interval.
// Attack speed is a time: a smaller attackSpeedTime casts faster. Values <= 0
// mean "no attack speed stat" and leave the cast time unchanged.
func ActualCastTime(baseCastTime, attackSpeedTime, baseAttackSpeed float64) float64 {
	if attackSpeedTime > 0 {
		return baseCastTime * (attackSpeedTime / baseAttackSpeed)
	}
	return baseCastTime
}

// ActualCooldown subtracts flat specialization seconds from a cooldown and
// then applies the cooldown speed curve when cooldownSpeed is positive.
func ActualCooldown(baseCooldown, cooldownSpeed, specialization float64) float64 {
	adjusted := baseCooldown - specialization
	if cooldownSpeed > 0 {
		reduction := cooldownSpeed / (cooldownSpeed + CooldownSaturation)
		return adjusted * (1 - reduction)
	}
	return adjusted
}

// SpeedLimiter names the stat that limits how often a skill is cast.
type SpeedLimiter string

const (
	LimitByCooldown SpeedLimiter = "cooldown"
	LimitByCastTime SpeedLimiter = "castTime"
)

// ParseSpeedLimiter parses a speed limiter name.
func ParseSpeedLimiter(value string) (SpeedLimiter, error) {
	switch l := SpeedLimiter(value); l {
	case LimitByCooldown, LimitByCastTime:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSpeedLimiter, value)
}

// Timing holds the cast cycle parameters of a skill.
type Timing struct {
	Cooldown       float64 `json:"cooldownTime"`
	CastTime       float64 `json:"castTime"`
	Specialization float64 `json:"skillCooldownSpecialization"`
	UseAttackSpeed bool    `json:"useAttackSpeed"`
	UseCDR         bool    `json:"useCDR"`
}

// DefaultTiming returns a 10s cooldown, 1s cast skill with cooldown speed on.
func DefaultTiming() Timing {
	return Timing{Cooldown: 10, CastTime: 1}.Limited(LimitByCooldown)
}

// Limited returns a copy of t with the speed flags set for limiter.
func (t Timing) Limited(limiter SpeedLimiter) Timing {
	t.UseAttackSpeed = limiter == LimitByCastTime
	t.UseCDR = limiter == LimitByCooldown
	return t
}

// DPS is the result of a damage-per-second calculation.
type DPS struct {
	Damage         Breakdown `json:"damage"`
	ActualCastTime float64   `json:"actualCastTime"`
	ActualCooldown float64   `json:"actualCooldown"`
	Cycle          float64   `json:"cycle"`
	DPS            float64   `json:"dps"`
}

// CalculateDPS divides the expected damage of one cast by the cast cycle.
// The cooldown starts once the cast completes, so the cycle is cast time plus
// cooldown. A cycle of zero or less yields 0 DPS.
func CalculateDPS(build Build, enemy Enemy, ctx Context, timing Timing) DPS {
	damage := Calculate(build, enemy, ctx)

	castTime := timing.CastTime
	if timing.UseAttackSpeed {
		castTime = ActualCastTime(timing.CastTime, build.Stats.Get(StatAttackSpeedTime), BaseAttackSpeed)
	}
	cooldownSpeed := 0.0
	if timing.UseCDR {
		cooldownSpeed = build.Stats.Get(StatCooldownSpeed)
	}
	cooldown := ActualCooldown(timing.Cooldown, cooldownSpeed, timing.Specialization)

	cycle := castTime + cooldown
	result := DPS{
		Damage:         damage,
		ActualCastTime: castTime,
		ActualCooldown: cooldown,
		Cycle:          cycle,
	}
	if cycle > 0 {
		result.DPS = damage.ExpectedDamage / cycle
	}
	return result
}
