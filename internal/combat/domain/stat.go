package domain

import "sort"

// Stat names one optional numeric field of a Build or Enemy record.
type Stat string

// Attacker stats.
const (
	StatMinDMG        Stat = "minDMG"
	StatMaxDMG        Stat = "maxDMG"
	StatOffhandMinDMG Stat = "offhandMinDMG"
	StatOffhandMaxDMG Stat = "offhandMaxDMG"
	StatOffhandChance Stat = "offhandChance"
	StatBonusDamage   Stat = "bonusDamage"

	StatMeleeCritical  Stat = "meleeCritical"
	StatRangedCritical Stat = "rangedCritical"
	StatMagicCritical  Stat = "magicCritical"
	StatCriticalDamage Stat = "criticalDamage"

	StatMeleeHeavyAttack  Stat = "meleeHeavyAttack"
	StatRangedHeavyAttack Stat = "rangedHeavyAttack"
	StatMagicHeavyAttack  Stat = "magicHeavyAttack"

	StatMeleeHit  Stat = "meleeHit"
	StatRangedHit Stat = "rangedHit"
	StatMagicHit  Stat = "magicHit"

	StatSkillDamageBoost Stat = "skillDamageBoost"

	StatAttackSpeedPercent   Stat = "attackSpeedPercent"
	StatAttackSpeedTime      Stat = "attackSpeedTime"
	StatCooldownSpeed        Stat = "cooldownSpeed"
	StatCooldownSpeedPercent Stat = "cooldownSpeedPercent"

	StatSpeciesDamageBoost  Stat = "speciesDamageBoost"
	StatPvEDamageMultiplier Stat = "pveDamageMultiplier"

	StatShieldBlockPenetrationChance Stat = "shieldBlockPenetrationChance"

	StatFrontEvasion           Stat = "frontEvasion"
	StatSideHeavyAttackEvasion Stat = "sideHeavyAttackEvasion"
	StatBackHitChance          Stat = "backHitChance"
	StatSideHitChance          Stat = "sideHitChance"
	StatBackHeavyAttackChance  Stat = "backHeavyAttackChance"
	StatSideHeavyAttackChance  Stat = "sideHeavyAttackChance"
	StatBackCriticalHit        Stat = "backCriticalHit"
	StatSideCriticalHit        Stat = "sideCriticalHit"
)

// Defender stats. Builds may also carry these when imported from a sheet.
const (
	StatDamageReduction     Stat = "damageReduction"
	StatBossDamageReduction Stat = "bossDamageReduction"

	StatMeleeDefense  Stat = "meleeDefense"
	StatRangedDefense Stat = "rangedDefense"
	StatMagicDefense  Stat = "magicDefense"

	StatMeleeEvasion  Stat = "meleeEvasion"
	StatRangedEvasion Stat = "rangedEvasion"
	StatMagicEvasion  Stat = "magicEvasion"

	StatMeleeEndurance  Stat = "meleeEndurance"
	StatRangedEndurance Stat = "rangedEndurance"
	StatMagicEndurance  Stat = "magicEndurance"

	StatMeleeHeavyAttackEvasion  Stat = "meleeHeavyAttackEvasion"
	StatRangedHeavyAttackEvasion Stat = "rangedHeavyAttackEvasion"
	StatMagicHeavyAttackEvasion  Stat = "magicHeavyAttackEvasion"

	StatPvPMeleeEndurance           Stat = "pvpMeleeEndurance"
	StatPvPRangedEndurance          Stat = "pvpRangedEndurance"
	StatPvPMagicEndurance           Stat = "pvpMagicEndurance"
	StatPvPMeleeEvasion             Stat = "pvpMeleeEvasion"
	StatPvPRangedEvasion            Stat = "pvpRangedEvasion"
	StatPvPMagicEvasion             Stat = "pvpMagicEvasion"
	StatPvPMeleeHeavyAttackEvasion  Stat = "pvpMeleeHeavyAttackEvasion"
	StatPvPRangedHeavyAttackEvasion Stat = "pvpRangedHeavyAttackEvasion"
	StatPvPMagicHeavyAttackEvasion  Stat = "pvpMagicHeavyAttackEvasion"

	StatBossMeleeEndurance           Stat = "bossMeleeEndurance"
	StatBossRangedEndurance          Stat = "bossRangedEndurance"
	StatBossMagicEndurance           Stat = "bossMagicEndurance"
	StatBossMeleeEvasion             Stat = "bossMeleeEvasion"
	StatBossRangedEvasion            Stat = "bossRangedEvasion"
	StatBossMagicEvasion             Stat = "bossMagicEvasion"
	StatBossMeleeHeavyAttackEvasion  Stat = "bossMeleeHeavyAttackEvasion"
	StatBossRangedHeavyAttackEvasion Stat = "bossRangedHeavyAttackEvasion"
	StatBossMagicHeavyAttackEvasion  Stat = "bossMagicHeavyAttackEvasion"

	StatSkillDamageResistance    Stat = "skillDamageResistance"
	StatCriticalDamageResistance Stat = "criticalDamageResistance"
	StatShieldBlockChance        Stat = "shieldBlockChance"

	StatWeakenResistance        Stat = "weakenResistance"
	StatStunResistance          Stat = "stunResistance"
	StatPetrificationResistance Stat = "petrificationResistance"
	StatSleepResistance         Stat = "sleepResistance"
	StatSilenceResistance       Stat = "silenceResistance"
	StatFearResistance          Stat = "fearResistance"
	StatBindResistance          Stat = "bindResistance"
	StatCollisionResistance     Stat = "collisionResistance"

	StatWeakenChance        Stat = "weakenChance"
	StatStunChance          Stat = "stunChance"
	StatFearChance          Stat = "fearChance"
	StatBindChance          Stat = "bindChance"
	StatPetrificationChance Stat = "petrificationChance"
	StatSleepChance         Stat = "sleepChance"
	StatCollisionChance     Stat = "collisionChance"
	StatSilenceChance       Stat = "silenceChance"
)

// StatSkillPotency is a sweepable pseudo-stat owned by the skill configuration.
const StatSkillPotency Stat = "skillPotency"

// StatSide identifies which record owns a stat when it is swept on a chart.
type StatSide int

const (
	SideUnknown StatSide = iota
	SideAttacker
	SideDefender
	SideSkill
)

var attackerStats = []Stat{
	StatMinDMG, StatMaxDMG, StatOffhandMinDMG, StatOffhandMaxDMG, StatOffhandChance, StatBonusDamage,
	StatMeleeCritical, StatRangedCritical, StatMagicCritical, StatCriticalDamage,
	StatMeleeHeavyAttack, StatRangedHeavyAttack, StatMagicHeavyAttack,
	StatMeleeHit, StatRangedHit, StatMagicHit,
	StatSkillDamageBoost,
	StatAttackSpeedPercent, StatAttackSpeedTime, StatCooldownSpeed, StatCooldownSpeedPercent,
	StatSpeciesDamageBoost, StatPvEDamageMultiplier,
	StatShieldBlockPenetrationChance,
	StatFrontEvasion, StatSideHeavyAttackEvasion,
	StatBackHitChance, StatSideHitChance, StatBackHeavyAttackChance, StatSideHeavyAttackChance,
	StatBackCriticalHit, StatSideCriticalHit,
	StatWeakenChance,
}

var defenderStats = []Stat{
	StatDamageReduction, StatBossDamageReduction,
	StatMeleeDefense, StatRangedDefense, StatMagicDefense,
	StatMeleeEvasion, StatRangedEvasion, StatMagicEvasion,
	StatMeleeEndurance, StatRangedEndurance, StatMagicEndurance,
	StatMeleeHeavyAttackEvasion, StatRangedHeavyAttackEvasion, StatMagicHeavyAttackEvasion,
	StatPvPMeleeEndurance, StatPvPRangedEndurance, StatPvPMagicEndurance,
	StatPvPMeleeEvasion, StatPvPRangedEvasion, StatPvPMagicEvasion,
	StatPvPMeleeHeavyAttackEvasion, StatPvPRangedHeavyAttackEvasion, StatPvPMagicHeavyAttackEvasion,
	StatBossMeleeEndurance, StatBossRangedEndurance, StatBossMagicEndurance,
	StatBossMeleeEvasion, StatBossRangedEvasion, StatBossMagicEvasion,
	StatBossMeleeHeavyAttackEvasion, StatBossRangedHeavyAttackEvasion, StatBossMagicHeavyAttackEvasion,
	StatSkillDamageResistance, StatCriticalDamageResistance, StatShieldBlockChance,
	StatWeakenResistance, StatStunResistance, StatPetrificationResistance, StatSleepResistance,
	StatSilenceResistance, StatFearResistance, StatBindResistance, StatCollisionResistance,
	StatStunChance, StatFearChance, StatBindChance, StatPetrificationChance,
	StatSleepChance, StatCollisionChance, StatSilenceChance,
}

var statSides = func() map[Stat]StatSide {
	sides := make(map[Stat]StatSide, len(attackerStats)+len(defenderStats)+1)
	for _, s := range attackerStats {
		sides[s] = SideAttacker
	}
	for _, s := range defenderStats {
		sides[s] = SideDefender
	}
	sides[StatSkillPotency] = SideSkill
	return sides
}()

// SideOf reports which record a stat belongs to.
// Enemies may also carry weakenChance, but it always sweeps the attacker.
func SideOf(stat Stat) StatSide {
	return statSides[stat]
}

// Known reports whether stat is a recognised record field.
func Known(stat Stat) bool {
	side := statSides[stat]
	return side == SideAttacker || side == SideDefender
}

// Stats is a sparse set of stat values. Absent keys mean the value was never
// provided; zero is a real value.
type Stats map[Stat]float64

// Get returns the value for stat, or 0 when absent.
func (s Stats) Get(stat Stat) float64 {
	return s[stat]
}

// Lookup returns the value for stat and whether it is present.
func (s Stats) Lookup(stat Stat) (float64, bool) {
	v, ok := s[stat]
	return v, ok
}

// Clone returns an independent copy.
func (s Stats) Clone() Stats {
	if s == nil {
		return nil
	}
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Keys returns the present stats in lexical order.
func (s Stats) Keys() []Stat {
	keys := make([]Stat, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// with returns a copy of s with stat set to value.
func (s Stats) with(stat Stat, value float64) Stats {
	out := s.Clone()
	if out == nil {
		out = Stats{}
	}
	out[stat] = value
	return out
}
