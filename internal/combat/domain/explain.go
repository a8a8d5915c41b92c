package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Step is one line of a formula trace.
type Step struct {
	Label   string  `json:"label"`
	Formula string  `json:"formula"`
	Value   float64 `json:"value"`
}

// Explain renders the breakdown as the ordered steps of the damage formula,
// with numbers formatted for tag.
func Explain(b Breakdown, pvp bool, tag language.Tag) []Step {
	p := message.NewPrinter(tag)
	pvpLabel := "PvE multiplier"
	pvpFormula := p.Sprintf("species %.3f × (1 + PvE bonus) = %.3f", b.SpeciesMultiplier, b.SpeciesMultiplier*b.PvPPvEMultiplier)
	if pvp {
		pvpLabel = "PvP multiplier"
		pvpFormula = p.Sprintf("flat %.0f%% PvP reduction", (1-PvPMultiplier)*100)
	}

	return []Step{
		{
			Label:   "Combat chances",
			Formula: p.Sprintf("crit %.2f%%, glance %.2f%%, normal %.2f%%", b.CritChance*100, b.GlanceChance*100, b.NormalChance*100),
			Value:   b.CritChance,
		},
		{
			Label:   "Base damage",
			Formula: p.Sprintf("crit × max × (1 + %.2f) + glance × min + normal × avg", b.CritDamageBonus),
			Value:   b.BaseDamage,
		},
		{
			Label:   "Skill damage",
			Formula: p.Sprintf("%.3f × %.1f + %.1f", b.SkillPotency, b.BaseDamage, b.SkillFlatAdd),
			Value:   b.CoreSkillDamage,
		},
		{
			Label:   "Defense",
			Formula: p.Sprintf("1 - %.4f", b.DefenseReduction),
			Value:   b.DefenseMultiplier,
		},
		{
			Label:   "Block",
			Formula: p.Sprintf("1 - block × %.1f", 0.4),
			Value:   b.BlockMultiplier,
		},
		{
			Label:   "Skill damage boost",
			Formula: p.Sprintf("boost vs resistance = %.4f", b.SkillMultiplier),
			Value:   b.SkillMultiplier,
		},
		{
			Label:   pvpLabel,
			Formula: pvpFormula,
			Value:   b.PvPPvEMultiplier,
		},
		{
			Label:   "After multipliers",
			Formula: p.Sprintf("%.1f × %.4f", b.CoreSkillDamage, b.AllMultipliers),
			Value:   b.AfterMultipliers,
		},
		{
			Label:   "Heavy attack",
			Formula: p.Sprintf("%.2f%% × 2 + %.2f%% × 1", b.HeavyChance*100, (1-b.HeavyChance)*100),
			Value:   b.AfterHeavy,
		},
		{
			Label:   "Final damage",
			Formula: p.Sprintf("max(0, %.1f + %.1f - %.1f)", b.AfterHeavy, b.BonusDamage, b.DamageReduction),
			Value:   b.FinalDamage,
		},
		{
			Label:   "Expected damage per cast",
			Formula: p.Sprintf("hit %.2f%% × %.0f hits × %.1f", b.HitChance*100, b.HitsPerCast, b.FinalDamage),
			Value:   b.ExpectedDamage,
		},
	}
}
