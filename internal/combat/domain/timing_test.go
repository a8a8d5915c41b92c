package domain

import (
	"math"
	"testing"
)

func TestActualCastTime(t *testing.T) {
	tests := []struct {
		name        string
		base, speed float64
		want        float64
	}{
		{"half interval", 3.6, 0.5, 1.8},
		{"nominal interval", 2, 1, 2},
		{"no attack speed", 2, 0, 2},
		{"negative attack speed", 2, -1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActualCastTime(tt.base, tt.speed, BaseAttackSpeed); !almostEqual(got, tt.want) {
				t.Errorf("ActualCastTime(%v, %v) = %v, want %v", tt.base, tt.speed, got, tt.want)
			}
		})
	}
}

func TestActualCooldown(t *testing.T) {
	tests := []struct {
		name                 string
		base, speed, special float64
		want                 float64
	}{
		{"specialization only", 60, 0, 9, 51},
		{"cooldown speed", 60, 53.8, 9, 51 * 100 / 153.8},
		{"saturation point halves", 10, 100, 0, 5},
		{"nothing", 10, 0, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActualCooldown(tt.base, tt.speed, tt.special); !almostEqual(got, tt.want) {
				t.Errorf("ActualCooldown(%v, %v, %v) = %v, want %v", tt.base, tt.speed, tt.special, got, tt.want)
			}
		})
	}

	if got := ActualCooldown(60, 53.8, 9); math.Abs(got-33.16) > 0.005 {
		t.Errorf("ActualCooldown(60, 53.8, 9) = %v, want about 33.16", got)
	}
}

func TestParseSpeedLimiter(t *testing.T) {
	for _, v := range []string{"cooldown", "castTime"} {
		if _, err := ParseSpeedLimiter(v); err != nil {
			t.Errorf("ParseSpeedLimiter(%q) error = %v", v, err)
		}
	}
	if _, err := ParseSpeedLimiter("both"); err == nil {
		t.Error("ParseSpeedLimiter(both) error = nil, want error")
	}
}

func TestTimingLimited(t *testing.T) {
	cd := Timing{}.Limited(LimitByCooldown)
	if !cd.UseCDR || cd.UseAttackSpeed {
		t.Errorf("cooldown limiter = %+v, want CDR only", cd)
	}
	ct := Timing{}.Limited(LimitByCastTime)
	if ct.UseCDR || !ct.UseAttackSpeed {
		t.Errorf("castTime limiter = %+v, want attack speed only", ct)
	}
}

func TestCalculateDPSAddsCastAndCooldown(t *testing.T) {
	build := plainBuild().With(StatCooldownSpeed, 100).With(StatAttackSpeedTime, 0.5)
	enemy := plainEnemy()
	ctx := pveContext()

	// Cooldown limited: attack speed ignored, 10s cooldown halved.
	got := CalculateDPS(build, enemy, ctx, Timing{Cooldown: 10, CastTime: 1}.Limited(LimitByCooldown))
	if !almostEqual(got.ActualCastTime, 1) || !almostEqual(got.ActualCooldown, 5) {
		t.Fatalf("cast, cooldown = %v, %v, want 1, 5", got.ActualCastTime, got.ActualCooldown)
	}
	if !almostEqual(got.Cycle, 6) {
		t.Errorf("Cycle = %v, want 6", got.Cycle)
	}
	if !almostEqual(got.DPS, 175.0/6) {
		t.Errorf("DPS = %v, want %v", got.DPS, 175.0/6)
	}

	// Cast time limited: cooldown speed ignored.
	got = CalculateDPS(build, enemy, ctx, Timing{Cooldown: 10, CastTime: 1}.Limited(LimitByCastTime))
	if !almostEqual(got.Cycle, 10.5) {
		t.Errorf("Cycle = %v, want 10.5", got.Cycle)
	}
	if !almostEqual(got.DPS, 175.0/10.5) {
		t.Errorf("DPS = %v, want %v", got.DPS, 175.0/10.5)
	}
}

func TestCalculateDPSZeroCycle(t *testing.T) {
	got := CalculateDPS(plainBuild(), plainEnemy(), pveContext(), Timing{})
	if got.DPS != 0 {
		t.Errorf("DPS = %v, want 0", got.DPS)
	}
	got = CalculateDPS(plainBuild(), plainEnemy(), pveContext(), Timing{Cooldown: 1, Specialization: 5})
	if got.DPS != 0 {
		t.Errorf("negative cycle DPS = %v, want 0", got.DPS)
	}
}

func TestCalculateDPSScalesWithDamage(t *testing.T) {
	timing := DefaultTiming()
	a := CalculateDPS(plainBuild(), plainEnemy(), pveContext(), timing)
	doubled := plainBuild()
	doubled.MinDMG, doubled.MaxDMG = 200, 400
	b := CalculateDPS(doubled, plainEnemy(), pveContext(), timing)
	if !almostEqual(b.DPS/a.DPS, 2) {
		t.Errorf("DPS ratio = %v, want 2", b.DPS/a.DPS)
	}
}
