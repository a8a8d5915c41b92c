package share

import (
	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
	session "github.com/louisbranch/tnl-dmg-calc/internal/session/domain"
)

// field maps a record stat to its short key. Short keys are part of every
// token ever shared: never rename one or reuse it for another stat.
type field struct {
	stat   combat.Stat
	key    string
	def    float64
	hasDef bool
}

func withDefault(stat combat.Stat, key string, def float64) field {
	return field{stat: stat, key: key, def: def, hasDef: true}
}

func optional(stat combat.Stat, key string) field {
	return field{stat: stat, key: key}
}

const (
	keyName   = "n"
	keyMinDMG = "mi"
	keyMaxDMG = "ma"

	defaultMinDMG = 100
	defaultMaxDMG = 200

	defaultBuildName = "Build"
	defaultEnemyName = "Enemy"
)

var buildFields = []field{
	optional(combat.StatOffhandMinDMG, "omi"),
	optional(combat.StatOffhandMaxDMG, "oma"),
	optional(combat.StatOffhandChance, "oc"),

	withDefault(combat.StatMeleeCritical, "mc", 1000),
	withDefault(combat.StatRangedCritical, "rc", 1000),
	withDefault(combat.StatMagicCritical, "mgc", 1000),
	withDefault(combat.StatCriticalDamage, "cd", 50),

	withDefault(combat.StatMeleeHeavyAttack, "mh", 500),
	withDefault(combat.StatRangedHeavyAttack, "rh", 500),
	withDefault(combat.StatMagicHeavyAttack, "mgh", 500),

	withDefault(combat.StatMeleeHit, "mhi", 2000),
	withDefault(combat.StatRangedHit, "rhi", 2000),
	withDefault(combat.StatMagicHit, "mghi", 2000),

	withDefault(combat.StatBonusDamage, "bd", 0),
	withDefault(combat.StatSkillDamageBoost, "sdb", 0),
	withDefault(combat.StatWeakenChance, "wc", 0),
	optional(combat.StatSpeciesDamageBoost, "spdb"),
	optional(combat.StatPvEDamageMultiplier, "pve"),
	optional(combat.StatShieldBlockPenetrationChance, "sbp"),

	optional(combat.StatAttackSpeedPercent, "asp"),
	withDefault(combat.StatAttackSpeedTime, "ast", 1),
	optional(combat.StatCooldownSpeed, "cs"),
	optional(combat.StatCooldownSpeedPercent, "csp"),

	optional(combat.StatBackHitChance, "bhc"),
	optional(combat.StatSideHitChance, "shc"),
	optional(combat.StatBackHeavyAttackChance, "bhac"),
	optional(combat.StatSideHeavyAttackChance, "shac"),
	optional(combat.StatBackCriticalHit, "bch"),
	optional(combat.StatSideCriticalHit, "sch"),
}

var enemyFields = []field{
	withDefault(combat.StatDamageReduction, "dr", 0),
	withDefault(combat.StatMeleeDefense, "md", 500),
	withDefault(combat.StatRangedDefense, "rd", 500),
	withDefault(combat.StatMagicDefense, "mgd", 500),
	withDefault(combat.StatMeleeEndurance, "me", 1000),
	withDefault(combat.StatRangedEndurance, "re", 1000),
	withDefault(combat.StatMagicEndurance, "mge", 1000),
	withDefault(combat.StatMeleeEvasion, "mev", 0),
	withDefault(combat.StatRangedEvasion, "rev", 0),
	withDefault(combat.StatMagicEvasion, "mgev", 0),
	withDefault(combat.StatMeleeHeavyAttackEvasion, "mhae", 0),
	withDefault(combat.StatRangedHeavyAttackEvasion, "rhae", 0),
	withDefault(combat.StatMagicHeavyAttackEvasion, "mghae", 0),
	withDefault(combat.StatSkillDamageResistance, "sdr", 0),
	withDefault(combat.StatWeakenResistance, "wr", 0),
	optional(combat.StatShieldBlockChance, "sbc"),
	optional(combat.StatCriticalDamageResistance, "cdr"),
}

// skillField maps one skill config value to its short key.
type skillField struct {
	key   string
	def   float64
	value func(*session.SkillConfig) *float64
}

var skillFields = []skillField{
	{"p", 1, func(c *session.SkillConfig) *float64 { return &c.Potency }},
	{"f", 0, func(c *session.SkillConfig) *float64 { return &c.FlatAdd }},
	{"h", 1, func(c *session.SkillConfig) *float64 { return &c.HitsPerCast }},
	{"wp", 0, func(c *session.SkillConfig) *float64 { return &c.WeakenPotency }},
	{"wf", 0, func(c *session.SkillConfig) *float64 { return &c.WeakenFlatAdd }},
	{"cd", 10, func(c *session.SkillConfig) *float64 { return &c.Cooldown }},
	{"ct", 1, func(c *session.SkillConfig) *float64 { return &c.CastTime }},
	{"cs", 0, func(c *session.SkillConfig) *float64 { return &c.Specialization }},
}
