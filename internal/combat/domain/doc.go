// Package domain implements the Throne & Liberty damage model.
//
// # Records
//
// Build and Enemy are sparse: apart from a build's name and main-hand damage
// range, every field is optional and lives in a Stats map. A missing stat
// reads as 0 inside the formulas; callers that want form defaults start from
// DefaultBuild and DefaultEnemy.
//
// # Damage
//
// Calculate resolves one cast as an expectation rather than a random roll:
//
//	base     = crit × max × (1 + critDmg) + glance × min + normal × avg  (+ off-hand × proc)
//	core     = (potency + weaken × weakenPotency) × base + flat + weaken × weakenFlat
//	scaled   = core × defense × block × skillBoost × species × pvp/pve
//	heavy    = scaled × (heavy × 2 + (1 - heavy))
//	final    = max(0, heavy + bonusDamage - damageReduction)
//	expected = hit × hitsPerCast × final
//
// # Timing
//
// CalculateDPS divides expected damage by the cast cycle, which is the
// (attack-speed scaled) cast time plus the (cooldown-speed scaled) cooldown.
//
// # Charts
//
// Sweep samples any metric across a range of one stat for several builds.
package domain
