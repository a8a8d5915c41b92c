package statsheet

import combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"

type valueKind int

const (
	plainValue valueKind = iota
	percentValue
	// fractionValue is a percentage stored as a probability in [0,1].
	fractionValue
)

type label struct {
	text string
	stat combat.Stat
	kind valueKind
}

// labels maps sheet labels to record stats.
var labels = []label{
	{"Species Damage Boost", combat.StatSpeciesDamageBoost, plainValue},
	{"PVE Damage Multiplier", combat.StatPvEDamageMultiplier, percentValue},
	{"Bonus Damage", combat.StatBonusDamage, plainValue},

	{"Ranged Critical Hit Chance", combat.StatRangedCritical, plainValue},
	{"Melee Critical Hit Chance", combat.StatMeleeCritical, plainValue},
	{"Magic Critical Hit Chance", combat.StatMagicCritical, plainValue},
	{"Critical Damage", combat.StatCriticalDamage, percentValue},

	{"Ranged Heavy Attack Chance", combat.StatRangedHeavyAttack, plainValue},
	{"Melee Heavy Attack Chance", combat.StatMeleeHeavyAttack, plainValue},
	{"Magic Heavy Attack Chance", combat.StatMagicHeavyAttack, plainValue},

	{"Ranged Hit Chance", combat.StatRangedHit, plainValue},
	{"Melee Hit Chance", combat.StatMeleeHit, plainValue},
	{"Magic Hit Chance", combat.StatMagicHit, plainValue},

	{"Skill Damage Boost", combat.StatSkillDamageBoost, plainValue},
	{"Weaken Chance", combat.StatWeakenChance, plainValue},
	{"Shield Block Penetration Chance", combat.StatShieldBlockPenetrationChance, fractionValue},
	{"Off-Hand Weapon Attack Chance", combat.StatOffhandChance, fractionValue},

	{"Attack Speed", combat.StatAttackSpeedPercent, percentValue},
	{"Attack Speed Time", combat.StatAttackSpeedTime, plainValue},
	{"Cooldown Speed", combat.StatCooldownSpeed, plainValue},
	{"Cooldown Speed Percent", combat.StatCooldownSpeedPercent, percentValue},

	{"Melee Defense", combat.StatMeleeDefense, plainValue},
	{"Ranged Defense", combat.StatRangedDefense, plainValue},
	{"Magic Defense", combat.StatMagicDefense, plainValue},

	{"Melee Endurance", combat.StatMeleeEndurance, plainValue},
	{"Ranged Endurance", combat.StatRangedEndurance, plainValue},
	{"Magic Endurance", combat.StatMagicEndurance, plainValue},

	{"Melee Evasion", combat.StatMeleeEvasion, plainValue},
	{"Ranged Evasion", combat.StatRangedEvasion, plainValue},
	{"Magic Evasion", combat.StatMagicEvasion, plainValue},

	{"Melee Heavy Attack Evasion", combat.StatMeleeHeavyAttackEvasion, plainValue},
	{"Ranged Heavy Attack Evasion", combat.StatRangedHeavyAttackEvasion, plainValue},
	{"Magic Heavy Attack Evasion", combat.StatMagicHeavyAttackEvasion, plainValue},

	{"Damage Reduction", combat.StatDamageReduction, plainValue},
	{"Skill Damage Resistance", combat.StatSkillDamageResistance, plainValue},
	{"Critical Damage Resistance", combat.StatCriticalDamageResistance, plainValue},
	{"Shield Block Chance", combat.StatShieldBlockChance, fractionValue},
	{"Weaken Resistance", combat.StatWeakenResistance, plainValue},

	{"Back Hit Chance", combat.StatBackHitChance, plainValue},
	{"Side Hit Chance", combat.StatSideHitChance, plainValue},
	{"Back Heavy Attack Chance", combat.StatBackHeavyAttackChance, plainValue},
	{"Side Heavy Attack Chance", combat.StatSideHeavyAttackChance, plainValue},
	{"Back Critical Hit", combat.StatBackCriticalHit, plainValue},
	{"Side Critical Hit", combat.StatSideCriticalHit, plainValue},
}

// stats converts the labelled values of s into record stats. Labels that are
// missing or whose value is not a number are left out.
func (s sheet) stats() combat.Stats {
	out := combat.Stats{}
	for _, l := range labels {
		raw, ok := s.lookup(l.text)
		if !ok {
			continue
		}
		var v float64
		switch l.kind {
		case percentValue:
			v, ok = ParsePercentage(raw)
		case fractionValue:
			v, ok = ParsePercentage(raw)
			v /= 100
		default:
			v, ok = ParseStatValue(raw)
		}
		if ok {
			out[l.stat] = v
		}
	}
	return out
}
