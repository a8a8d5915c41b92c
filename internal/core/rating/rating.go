// Package rating converts raw stat ratings into probabilities and multipliers.
//
// Every conversion uses the diminishing-returns form delta/(delta+K), where K
// is a curve-specific saturation constant. Functions are pure and safe for
// concurrent use.
package rating

import "math"

// Saturation constants for the rating curves.
const (
	// StandardSaturation is used by hit, critical, heavy, skill and species curves.
	StandardSaturation = 1000
	// WeakenSaturation makes the weaken curve four times more sensitive.
	WeakenSaturation = 250
	// DefenseSaturation makes each point of defense worth less.
	DefenseSaturation = 2500
	// BlockDamageReduction is the damage removed by a guaranteed block.
	BlockDamageReduction = 0.4
	// PvPDamageReduction is the flat reduction applied to all PvP damage.
	PvPDamageReduction = 0.1
)

// curve returns delta/(delta+k).
func curve(delta, k float64) float64 {
	return delta / (delta + k)
}

// RatingToPercent converts a bare rating into a probability.
func RatingToPercent(rating float64) float64 {
	return curve(rating, StandardSaturation)
}

// HitChance returns the probability that an attack lands.
// Only evasion in excess of hit lowers the chance, so it never reaches 0.
func HitChance(hit, evasion float64) float64 {
	diff := math.Max(0, evasion-hit)
	return 1 - curve(diff, StandardSaturation)
}

// CritGlance holds the mutually exclusive critical and glancing chances.
type CritGlance struct {
	Crit   float64
	Glance float64
}

// Normal returns the chance of a plain hit.
func (c CritGlance) Normal() float64 {
	return 1 - c.Crit - c.Glance
}

// CritGlanceChances resolves critical rating against endurance.
// A strictly higher critical rating produces crits, anything else glances.
func CritGlanceChances(crit, endurance float64) CritGlance {
	if crit > endurance {
		return CritGlance{Crit: curve(crit-endurance, StandardSaturation)}
	}
	return CritGlance{Glance: curve(endurance-crit, StandardSaturation)}
}

// HeavyChance returns the probability of a double-damage heavy attack.
func HeavyChance(heavy, heavyEvasion float64) float64 {
	return curve(math.Max(0, heavy-heavyEvasion), StandardSaturation)
}

// WeakenChance returns the probability that weaken applies.
func WeakenChance(weaken, weakenResistance float64) float64 {
	return curve(math.Max(0, weaken-weakenResistance), WeakenSaturation)
}

// SkillMultiplier compares skill damage boost against skill damage resistance.
// The result is above 1 when boost wins and below 1 otherwise.
func SkillMultiplier(boost, resist float64) float64 {
	diff := boost - resist
	if diff > 0 {
		return 1 + curve(diff, StandardSaturation)
	}
	abs := math.Abs(diff)
	return 1 - curve(abs, StandardSaturation)
}

// DefenseReduction returns the fraction of damage removed by defense.
func DefenseReduction(defense float64) float64 {
	return curve(defense, DefenseSaturation)
}

// BlockReduction returns the expected fraction of damage removed by shield
// blocks. Block chance is already a probability, not a rating.
func BlockReduction(blockChance, blockPenetration float64) float64 {
	return math.Max(0, blockChance-blockPenetration) * BlockDamageReduction
}

// SpeciesDamageMultiplier returns the bonus granted by species damage boost.
func SpeciesDamageMultiplier(speciesBoost float64) float64 {
	return curve(speciesBoost, StandardSaturation)
}

// CriticalDamageMultiplier converts critical damage percent, net of
// resistance, into a decimal bonus. Resistance never makes it negative.
func CriticalDamageMultiplier(critDamage, critResist float64) float64 {
	return math.Max(0, critDamage-critResist) / 100
}

// PvEDamageMultiplier converts a PvE bonus percent into a decimal bonus.
func PvEDamageMultiplier(bonus float64) float64 {
	return bonus / 100
}

// PvPDamageMultiplier returns the decimal bonus applied in PvP.
func PvPDamageMultiplier() float64 {
	return -PvPDamageReduction
}
