package rating

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRatingToPercent(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   float64
	}{
		{"zero", 0, 0},
		{"equal to saturation", 1000, 0.5},
		{"three times saturation", 3000, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatingToPercent(tt.rating); !almostEqual(got, tt.want) {
				t.Errorf("RatingToPercent(%v) = %v, want %v", tt.rating, got, tt.want)
			}
		})
	}
}

func TestHitChance(t *testing.T) {
	tests := []struct {
		name    string
		hit     float64
		evasion float64
		want    float64
	}{
		{"no evasion", 0, 0, 1},
		{"hit above evasion", 2000, 500, 1},
		{"evasion above hit", 0, 1000, 0.5},
		{"evasion far above hit", 500, 3500, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitChance(tt.hit, tt.evasion); !almostEqual(got, tt.want) {
				t.Errorf("HitChance(%v, %v) = %v, want %v", tt.hit, tt.evasion, got, tt.want)
			}
		})
	}
}

func TestHitChanceNeverReachesZero(t *testing.T) {
	if got := HitChance(0, 1e12); got <= 0 {
		t.Fatalf("HitChance with huge evasion = %v, want > 0", got)
	}
}

func TestCritGlanceChances(t *testing.T) {
	tests := []struct {
		name       string
		crit       float64
		endurance  float64
		wantCrit   float64
		wantGlance float64
	}{
		{"crit wins", 1000, 800, 200.0 / 1200.0, 0},
		{"endurance wins", 800, 1000, 0, 200.0 / 1200.0},
		{"tie resolves to zero glance", 1000, 1000, 0, 0},
		{"both zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CritGlanceChances(tt.crit, tt.endurance)
			if !almostEqual(got.Crit, tt.wantCrit) || !almostEqual(got.Glance, tt.wantGlance) {
				t.Errorf("CritGlanceChances(%v, %v) = %+v, want crit %v glance %v", tt.crit, tt.endurance, got, tt.wantCrit, tt.wantGlance)
			}
			if !almostEqual(got.Normal(), 1-tt.wantCrit-tt.wantGlance) {
				t.Errorf("Normal() = %v, want %v", got.Normal(), 1-tt.wantCrit-tt.wantGlance)
			}
		})
	}
}

func TestCritGlanceMutualExclusion(t *testing.T) {
	for crit := 0.0; crit <= 4000; crit += 250 {
		for endurance := 0.0; endurance <= 4000; endurance += 250 {
			got := CritGlanceChances(crit, endurance)
			if got.Crit > 0 && got.Glance != 0 {
				t.Fatalf("crit %v endurance %v: both chances set: %+v", crit, endurance, got)
			}
			if got.Glance > 0 && got.Crit != 0 {
				t.Fatalf("crit %v endurance %v: both chances set: %+v", crit, endurance, got)
			}
		}
	}
}

func TestMonotonicity(t *testing.T) {
	prevCrit := -1.0
	prevHit := -1.0
	prevHeavy := -1.0
	prevWeaken := -1.0
	for rating := 0.0; rating <= 5000; rating += 100 {
		crit := CritGlanceChances(rating, 1500).Crit
		hit := HitChance(rating, 1500)
		heavy := HeavyChance(rating, 300)
		weaken := WeakenChance(rating, 300)
		if crit < prevCrit || hit < prevHit || heavy < prevHeavy || weaken < prevWeaken {
			t.Fatalf("rating %v: chance decreased (crit %v<%v hit %v<%v heavy %v<%v weaken %v<%v)",
				rating, crit, prevCrit, hit, prevHit, heavy, prevHeavy, weaken, prevWeaken)
		}
		prevCrit, prevHit, prevHeavy, prevWeaken = crit, hit, heavy, weaken
	}

	prevCrit = 2
	for endurance := 0.0; endurance <= 5000; endurance += 100 {
		crit := CritGlanceChances(2500, endurance).Crit
		if crit > prevCrit {
			t.Fatalf("endurance %v: crit chance increased to %v from %v", endurance, crit, prevCrit)
		}
		prevCrit = crit
	}
}

func TestProbabilityBounds(t *testing.T) {
	ratings := []float64{0, 1, 250, 1000, 10000, 1e9}
	for _, a := range ratings {
		for _, b := range ratings {
			cg := CritGlanceChances(a, b)
			values := map[string]float64{
				"crit":   cg.Crit,
				"glance": cg.Glance,
				"heavy":  HeavyChance(a, b),
				"weaken": WeakenChance(a, b),
			}
			for name, v := range values {
				if v < 0 || v >= 1 {
					t.Fatalf("%s(%v, %v) = %v, want in [0,1)", name, a, b, v)
				}
			}
			if hit := HitChance(a, b); hit <= 0 || hit > 1 {
				t.Fatalf("HitChance(%v, %v) = %v, want in (0,1]", a, b, hit)
			}
		}
	}
}

func TestWeakenSaturationIsDistinct(t *testing.T) {
	if got := WeakenChance(250, 0); !almostEqual(got, 0.5) {
		t.Errorf("WeakenChance(250, 0) = %v, want 0.5", got)
	}
	if got := HeavyChance(250, 0); !almostEqual(got, 0.2) {
		t.Errorf("HeavyChance(250, 0) = %v, want 0.2", got)
	}
}

func TestHeavyAndWeakenIgnoreExcessEvasion(t *testing.T) {
	if got := HeavyChance(100, 900); got != 0 {
		t.Errorf("HeavyChance(100, 900) = %v, want 0", got)
	}
	if got := WeakenChance(100, 900); got != 0 {
		t.Errorf("WeakenChance(100, 900) = %v, want 0", got)
	}
}

func TestSkillMultiplier(t *testing.T) {
	tests := []struct {
		name   string
		boost  float64
		resist float64
		want   float64
	}{
		{"neutral", 0, 0, 1},
		{"boost wins", 1000, 0, 1.5},
		{"resist wins", 0, 1000, 0.5},
		{"partial", 1500, 500, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkillMultiplier(tt.boost, tt.resist); !almostEqual(got, tt.want) {
				t.Errorf("SkillMultiplier(%v, %v) = %v, want %v", tt.boost, tt.resist, got, tt.want)
			}
		})
	}
}

func TestDefenseReduction(t *testing.T) {
	if got := DefenseReduction(2500); !almostEqual(got, 0.5) {
		t.Errorf("DefenseReduction(2500) = %v, want 0.5", got)
	}
	if got := DefenseReduction(0); got != 0 {
		t.Errorf("DefenseReduction(0) = %v, want 0", got)
	}
}

func TestBlockReduction(t *testing.T) {
	tests := []struct {
		name  string
		block float64
		pen   float64
		want  float64
	}{
		{"no block", 0, 0, 0},
		{"full block", 1, 0, 0.4},
		{"half block", 0.5, 0, 0.2},
		{"penetration cancels block", 0.3, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlockReduction(tt.block, tt.pen); !almostEqual(got, tt.want) {
				t.Errorf("BlockReduction(%v, %v) = %v, want %v", tt.block, tt.pen, got, tt.want)
			}
		})
	}
}

func TestCriticalDamageMultiplier(t *testing.T) {
	if got := CriticalDamageMultiplier(50, 0); !almostEqual(got, 0.5) {
		t.Errorf("CriticalDamageMultiplier(50, 0) = %v, want 0.5", got)
	}
	if got := CriticalDamageMultiplier(50, 80); got != 0 {
		t.Errorf("CriticalDamageMultiplier(50, 80) = %v, want 0", got)
	}
}

func TestFlatMultipliers(t *testing.T) {
	if got := SpeciesDamageMultiplier(1000); !almostEqual(got, 0.5) {
		t.Errorf("SpeciesDamageMultiplier(1000) = %v, want 0.5", got)
	}
	if got := PvEDamageMultiplier(12); !almostEqual(got, 0.12) {
		t.Errorf("PvEDamageMultiplier(12) = %v, want 0.12", got)
	}
	if got := PvPDamageMultiplier(); !almostEqual(got, -0.1) {
		t.Errorf("PvPDamageMultiplier() = %v, want -0.1", got)
	}
}
