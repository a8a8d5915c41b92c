package statsheet

import (
	"errors"
	"math"
	"testing"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseBuildMainHandOnly(t *testing.T) {
	b := ParseBuild("Main Stats\nMax Damage\n100\n~\n200", "Sheet")
	if b.Name != "Sheet" || b.MinDMG != 100 || b.MaxDMG != 200 {
		t.Errorf("build = %+v, want Sheet 100-200", b)
	}
	for _, stat := range []combat.Stat{combat.StatOffhandMinDMG, combat.StatOffhandMaxDMG, combat.StatOffhandChance} {
		if b.Has(stat) {
			t.Errorf("%s present, want absent", stat)
		}
	}
	if len(b.Stats) != 0 {
		t.Errorf("Stats = %v, want none", b.Stats)
	}
}

func TestParseBuildDualWield(t *testing.T) {
	text := `Character
Main Stats
Attack
Max Damage
100
~
200
Max Damage
50
~
80
Off-Hand Weapon Attack Chance
35%`
	b := ParseBuild(text, "Dual")
	if b.MinDMG != 100 || b.MaxDMG != 200 {
		t.Errorf("main hand = %v-%v, want 100-200", b.MinDMG, b.MaxDMG)
	}
	if b.Stats.Get(combat.StatOffhandMinDMG) != 50 || b.Stats.Get(combat.StatOffhandMaxDMG) != 80 {
		t.Errorf("off-hand = %v-%v, want 50-80", b.Stats.Get(combat.StatOffhandMinDMG), b.Stats.Get(combat.StatOffhandMaxDMG))
	}
	if got := b.Stats.Get(combat.StatOffhandChance); !almostEqual(got, 0.35) {
		t.Errorf("offhandChance = %v, want 0.35", got)
	}
}

func TestParseBuildZeroOffhandDropped(t *testing.T) {
	b := ParseBuild("Max Damage\n100\n~\n200\nMax Damage\n0\n~\n80", "x")
	if b.Has(combat.StatOffhandMinDMG) || b.Has(combat.StatOffhandMaxDMG) {
		t.Errorf("off-hand kept with a zero end: %v", b.Stats)
	}
}

func TestParseBuildStatLayouts(t *testing.T) {
	text := `Search for stats..
Main Stats
Critical
Melee Critical Hit Chance 1,234
Critical Damage
45.5%
Hit
Magic Hit Chance
2 100
Melee Endurance 1 234,5 (23.4%)
Magic Evasion
850
(12.5%)
Bonus Damage
631,8
Attack Speed
0.36s
Cooldown Speed 53.8
Shield Block Penetration Chance 12%
Skill Damage Boost
-`
	b := ParseBuild(text, "Layouts")
	tests := []struct {
		stat combat.Stat
		want float64
	}{
		{combat.StatMeleeCritical, 1234},
		{combat.StatCriticalDamage, 45.5},
		{combat.StatMagicHit, 2100},
		{combat.StatMeleeEndurance, 1234.5},
		{combat.StatMagicEvasion, 850},
		{combat.StatBonusDamage, 631.8},
		{combat.StatAttackSpeedTime, 0.36},
		{combat.StatCooldownSpeed, 53.8},
		{combat.StatShieldBlockPenetrationChance, 0.12},
	}
	for _, tt := range tests {
		t.Run(string(tt.stat), func(t *testing.T) {
			got, ok := b.Stats.Lookup(tt.stat)
			if !ok || !almostEqual(got, tt.want) {
				t.Errorf("%s = %v (present %v), want %v", tt.stat, got, ok, tt.want)
			}
		})
	}
	if b.Has(combat.StatSkillDamageBoost) {
		t.Error("unparseable skillDamageBoost present, want absent")
	}
	if b.Has(combat.StatAttackSpeedPercent) {
		t.Error("attack speed time also stored as percent")
	}
}

func TestParseBuildInlineAttackSpeed(t *testing.T) {
	b := ParseBuild("Attack Speed 0.42s\nAttack Speed\n15.5%", "x")
	if got := b.Stats.Get(combat.StatAttackSpeedTime); !almostEqual(got, 0.42) {
		t.Errorf("attackSpeedTime = %v, want 0.42", got)
	}
	if got := b.Stats.Get(combat.StatAttackSpeedPercent); !almostEqual(got, 15.5) {
		t.Errorf("attackSpeedPercent = %v, want 15.5", got)
	}
}

func TestParseBuildUsesLastMainStats(t *testing.T) {
	text := "Melee Hit Chance 999\nMain Stats\nMelee Hit Chance 1,000\nMain Stats\nMelee Hit Chance 1,500"
	if got := ParseBuild(text, "x").Stats.Get(combat.StatMeleeHit); got != 1500 {
		t.Errorf("meleeHit = %v, want 1500", got)
	}
}

func TestParseBuildNormalizesSpaces(t *testing.T) {
	text := "Main Stats\nMelee Hit Chance 1\u00a0500\nRanged Hit Chance\n2\u202f250"
	b := ParseBuild(text, "x")
	if got := b.Stats.Get(combat.StatMeleeHit); got != 1500 {
		t.Errorf("meleeHit = %v, want 1500", got)
	}
	if got := b.Stats.Get(combat.StatRangedHit); got != 2250 {
		t.Errorf("rangedHit = %v, want 2250", got)
	}
}

func TestParseEnemy(t *testing.T) {
	text := `Main Stats
Melee Defense 900
Magic Evasion 0
Shield Block Chance 20%
Resistance
Weaken Resistance 1,250`
	e := ParseEnemy(text, "Boss")
	tests := []struct {
		stat combat.Stat
		want float64
	}{
		{combat.StatMeleeDefense, 900},
		{combat.StatRangedDefense, 500},
		{combat.StatMeleeEndurance, 1000},
		{combat.StatMagicEvasion, 0},
		{combat.StatShieldBlockChance, 0.2},
		{combat.StatWeakenResistance, 1250},
	}
	for _, tt := range tests {
		if got := e.Stats.Get(tt.stat); !almostEqual(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.stat, got, tt.want)
		}
	}
	if e.Has(combat.StatCriticalDamageResistance) {
		t.Error("criticalDamageResistance present, want absent")
	}
	if e.Name != "Boss" {
		t.Errorf("Name = %q, want Boss", e.Name)
	}
}

func TestParseEnemyWeakenResistanceBeforeMainStats(t *testing.T) {
	e := ParseEnemy("weaken resistance 300\nMain Stats\nMelee Defense 900", "x")
	if got := e.Stats.Get(combat.StatWeakenResistance); got != 300 {
		t.Errorf("weakenResistance = %v, want 300", got)
	}
}

func TestImport(t *testing.T) {
	text := "Max Damage\n10\n~\n20"

	res, err := Import(text, "", KindBuild)
	if err != nil {
		t.Fatalf("Import(build) error = %v", err)
	}
	if res.Build == nil || res.Enemy != nil || res.Build.Name != DefaultBuildName {
		t.Errorf("Import(build) = %+v", res)
	}

	res, err = Import(text, "  Mob  ", KindEnemy)
	if err != nil {
		t.Fatalf("Import(enemy) error = %v", err)
	}
	if res.Enemy == nil || res.Enemy.Name != "Mob" {
		t.Errorf("Import(enemy) = %+v", res)
	}

	res, err = Import(text, "", KindEnemy)
	if err != nil || res.Enemy.Name != DefaultEnemyName {
		t.Errorf("Import(enemy, no name) = %+v, %v", res, err)
	}

	if _, err := Import(" \n\t", "", KindBuild); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Import(blank) error = %v, want ErrEmptyText", err)
	}
	if _, err := Import(text, "", "pet"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Import(pet) error = %v, want ErrUnknownKind", err)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind(" Enemy "); err != nil || k != KindEnemy {
		t.Errorf("ParseKind(Enemy) = %v, %v", k, err)
	}
	if _, err := ParseKind("boss"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(boss) error = %v", err)
	}
}
