package domain

import (
	"math"

	"github.com/louisbranch/tnl-dmg-calc/internal/core/rating"
)

// PvPMultiplier is the flat damage factor applied in PvP.
const PvPMultiplier = 1 - rating.PvPDamageReduction

// Breakdown is the full result of one damage calculation. Every field is
// recomputed on each call.
type Breakdown struct {
	BaseDamage       float64 `json:"baseDamage"`
	CritChance       float64 `json:"critChance"`
	GlanceChance     float64 `json:"glanceChance"`
	NormalChance     float64 `json:"normalChance"`
	HitChance        float64 `json:"hitChance"`
	HeavyChance      float64 `json:"heavyChance"`
	WeakenChance     float64 `json:"weakenChance"`
	SkillMultiplier  float64 `json:"skillMultiplier"`
	DefenseReduction float64 `json:"defenseReduction"`
	FinalDamage      float64 `json:"finalDamage"`
	ExpectedDamage   float64 `json:"expectedDamage"`

	CritDamageBonus   float64 `json:"critDamageBonus"`
	SkillPotency      float64 `json:"skillPotency"`
	SkillFlatAdd      float64 `json:"skillFlatAdd"`
	HitsPerCast       float64 `json:"hitsPerCast"`
	CoreSkillDamage   float64 `json:"coreSkillDamage"`
	DefenseMultiplier float64 `json:"defenseMultiplier"`
	BlockMultiplier   float64 `json:"blockMultiplier"`
	SpeciesMultiplier float64 `json:"speciesMultiplier"`
	PvPPvEMultiplier  float64 `json:"pvpPveMultiplier"`
	AllMultipliers    float64 `json:"allMultipliers"`
	AfterMultipliers  float64 `json:"afterMultipliers"`
	HeavyMultiplier   float64 `json:"heavyMultiplier"`
	AfterHeavy        float64 `json:"afterHeavy"`
	BonusDamage       float64 `json:"bonusDamage"`
	DamageReduction   float64 `json:"damageReduction"`
}

// AttackerRatings are the attacker's ratings for one combat type, including
// positional deltas.
type AttackerRatings struct {
	Critical    float64
	Hit         float64
	HeavyAttack float64
}

// DefenderRatings are the defender's ratings for one combat type.
type DefenderRatings struct {
	Endurance          float64
	Evasion            float64
	HeavyAttackEvasion float64
	Defense            float64
}

type combatStatKeys struct {
	critical, hit, heavy                     Stat
	endurance, evasion, heavyEvasion, defense Stat
}

var combatKeys = map[CombatType]combatStatKeys{
	Melee: {
		critical: StatMeleeCritical, hit: StatMeleeHit, heavy: StatMeleeHeavyAttack,
		endurance: StatMeleeEndurance, evasion: StatMeleeEvasion,
		heavyEvasion: StatMeleeHeavyAttackEvasion, defense: StatMeleeDefense,
	},
	Ranged: {
		critical: StatRangedCritical, hit: StatRangedHit, heavy: StatRangedHeavyAttack,
		endurance: StatRangedEndurance, evasion: StatRangedEvasion,
		heavyEvasion: StatRangedHeavyAttackEvasion, defense: StatRangedDefense,
	},
	Magic: {
		critical: StatMagicCritical, hit: StatMagicHit, heavy: StatMagicHeavyAttack,
		endurance: StatMagicEndurance, evasion: StatMagicEvasion,
		heavyEvasion: StatMagicHeavyAttackEvasion, defense: StatMagicDefense,
	},
}

// CombatStats selects the ratings for combatType and applies the positional
// deltas for direction. Unknown combat types fall back to magic, matching the
// last branch of the selection.
func CombatStats(build Build, enemy Enemy, combatType CombatType, direction Direction) (AttackerRatings, DefenderRatings) {
	keys, ok := combatKeys[combatType]
	if !ok {
		keys = combatKeys[Magic]
	}

	attacker := AttackerRatings{
		Critical:    build.Stats.Get(keys.critical),
		Hit:         build.Stats.Get(keys.hit),
		HeavyAttack: build.Stats.Get(keys.heavy),
	}
	switch direction {
	case Back:
		attacker.Critical += build.Stats.Get(StatBackCriticalHit)
		attacker.Hit += build.Stats.Get(StatBackHitChance)
		attacker.HeavyAttack += build.Stats.Get(StatBackHeavyAttackChance)
	case Side:
		attacker.Critical += build.Stats.Get(StatSideCriticalHit)
		attacker.Hit += build.Stats.Get(StatSideHitChance)
		attacker.HeavyAttack += build.Stats.Get(StatSideHeavyAttackChance)
	}

	defender := DefenderRatings{
		Endurance:          enemy.Stats.Get(keys.endurance),
		Evasion:            enemy.Stats.Get(keys.evasion),
		HeavyAttackEvasion: enemy.Stats.Get(keys.heavyEvasion),
		Defense:            enemy.Stats.Get(keys.defense),
	}
	return attacker, defender
}

// ExpectedWeaponDamage returns the probability-weighted damage of one weapon
// roll: crits deal max damage scaled by the crit bonus, glances deal min
// damage and normal hits deal the average of the range.
func ExpectedWeaponDamage(chances rating.CritGlance, minDMG, maxDMG, critDamageBonus float64) float64 {
	avg := (minDMG + maxDMG) / 2
	return chances.Crit*maxDMG*(1+critDamageBonus) +
		chances.Glance*minDMG +
		chances.Normal()*avg
}

// Calculate computes the expected damage of one cast of a skill by build
// against enemy. It never validates its inputs; see Validate.
func Calculate(build Build, enemy Enemy, ctx Context) Breakdown {
	skill := ctx.Skill.normalized()
	attacker, defender := CombatStats(build, enemy, ctx.CombatType, ctx.Direction)

	critDamageBonus := rating.CriticalDamageMultiplier(
		build.Stats.Get(StatCriticalDamage),
		enemy.Stats.Get(StatCriticalDamageResistance),
	)
	chances := rating.CritGlanceChances(attacker.Critical, defender.Endurance)

	baseDamage := ExpectedWeaponDamage(chances, build.MinDMG, build.MaxDMG, critDamageBonus)
	offMin := build.Stats.Get(StatOffhandMinDMG)
	offMax := build.Stats.Get(StatOffhandMaxDMG)
	offChance := build.Stats.Get(StatOffhandChance)
	if offMin != 0 && offMax != 0 && offChance != 0 {
		baseDamage += ExpectedWeaponDamage(chances, offMin, offMax, critDamageBonus) * offChance
	}

	weaken := rating.WeakenChance(build.Stats.Get(StatWeakenChance), enemy.Stats.Get(StatWeakenResistance))
	potency := skill.Potency + weaken*skill.WeakenPotency
	flatAdd := skill.FlatAdd + weaken*skill.WeakenFlatAdd
	coreSkillDamage := potency*baseDamage + flatAdd

	defenseReduction := rating.DefenseReduction(defender.Defense)
	defenseMultiplier := 1 - defenseReduction
	blockMultiplier := 1 - rating.BlockReduction(
		enemy.Stats.Get(StatShieldBlockChance),
		build.Stats.Get(StatShieldBlockPenetrationChance),
	)
	skillMultiplier := rating.SkillMultiplier(
		build.Stats.Get(StatSkillDamageBoost),
		enemy.Stats.Get(StatSkillDamageResistance),
	)
	speciesMultiplier := 1.0
	pvpPveMultiplier := PvPMultiplier
	if !ctx.PvP {
		speciesMultiplier = 1 + rating.SpeciesDamageMultiplier(build.Stats.Get(StatSpeciesDamageBoost))
		pvpPveMultiplier = 1 + rating.PvEDamageMultiplier(build.Stats.Get(StatPvEDamageMultiplier))
	}
	allMultipliers := defenseMultiplier * blockMultiplier * skillMultiplier * speciesMultiplier * pvpPveMultiplier
	afterMultipliers := coreSkillDamage * allMultipliers

	heavy := rating.HeavyChance(attacker.HeavyAttack, defender.HeavyAttackEvasion)
	heavyMultiplier := heavy*2 + (1-heavy)*1
	afterHeavy := afterMultipliers * heavyMultiplier

	bonusDamage := build.Stats.Get(StatBonusDamage)
	damageReduction := enemy.Stats.Get(StatDamageReduction)
	finalDamage := math.Max(0, afterHeavy+bonusDamage-damageReduction)

	hit := rating.HitChance(attacker.Hit, defender.Evasion)

	return Breakdown{
		BaseDamage:       baseDamage,
		CritChance:       chances.Crit,
		GlanceChance:     chances.Glance,
		NormalChance:     chances.Normal(),
		HitChance:        hit,
		HeavyChance:      heavy,
		WeakenChance:     weaken,
		SkillMultiplier:  skillMultiplier,
		DefenseReduction: defenseReduction,
		FinalDamage:      finalDamage,
		ExpectedDamage:   hit * skill.HitsPerCast * finalDamage,

		CritDamageBonus:   critDamageBonus,
		SkillPotency:      potency,
		SkillFlatAdd:      flatAdd,
		HitsPerCast:       skill.HitsPerCast,
		CoreSkillDamage:   coreSkillDamage,
		DefenseMultiplier: defenseMultiplier,
		BlockMultiplier:   blockMultiplier,
		SpeciesMultiplier: speciesMultiplier,
		PvPPvEMultiplier:  pvpPveMultiplier,
		AllMultipliers:    allMultipliers,
		AfterMultipliers:  afterMultipliers,
		HeavyMultiplier:   heavyMultiplier,
		AfterHeavy:        afterHeavy,
		BonusDamage:       bonusDamage,
		DamageReduction:   damageReduction,
	}
}
