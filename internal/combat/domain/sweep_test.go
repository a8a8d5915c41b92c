package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestXValues(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		current float64
		want    []float64
	}{
		{"current inserted", Range{0, 300, 100}, 150, []float64{0, 100, 150, 200, 300}},
		{"current already sampled", Range{0, 300, 100}, 100, []float64{0, 100, 200, 300}},
		{"current outside range", Range{0, 300, 100}, 500, []float64{0, 100, 200, 300}},
		{"step past max", Range{0, 250, 100}, 0, []float64{0, 100, 200}},
		{"single point", Range{5, 5, 1}, 5, []float64{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := XValues(tt.r, tt.current)
			if err != nil {
				t.Fatalf("XValues() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("XValues(%+v, %v) = %v, want %v", tt.r, tt.current, got, tt.want)
			}
		})
	}
}

func TestXValuesRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{"zero step", Range{0, 100, 0}},
		{"negative step", Range{0, 100, -1}},
		{"inverted", Range{100, 0, 10}},
		{"too many points", Range{0, 1e6, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := XValues(tt.r, 0); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("XValues(%+v) error = %v, want ErrInvalidRange", tt.r, err)
			}
		})
	}
}

func TestSweepDefenderStat(t *testing.T) {
	weak := plainBuild()
	weak.Name = "Weak"
	strong := plainBuild().With(StatMeleeCritical, 2200)
	strong.Name = "Strong"

	chart, err := Sweep(SweepRequest{
		Builds:  []Build{weak, strong},
		Enemy:   plainEnemy(),
		Stat:    StatMeleeEndurance,
		Range:   Range{Min: 0, Max: 3000, Step: 500},
		Metric:  MetricCritChance,
		Context: pveContext(),
		Timing:  DefaultTiming(),
	})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if chart.Current != 200 {
		t.Errorf("Current = %v, want 200", chart.Current)
	}
	if !reflect.DeepEqual(chart.Builds, []string{"Weak", "Strong"}) {
		t.Errorf("Builds = %v", chart.Builds)
	}
	if len(chart.Points) != 8 {
		t.Fatalf("len(Points) = %d, want 8", len(chart.Points))
	}
	for i := 1; i < len(chart.Points); i++ {
		prev, cur := chart.Points[i-1], chart.Points[i]
		if cur.Values[0] > prev.Values[0] {
			t.Errorf("crit chance rose from %v to %v as endurance rose", prev.Values[0], cur.Values[0])
		}
		if cur.Values[1] < cur.Values[0] {
			t.Errorf("at x=%v strong build %v < weak build %v", cur.X, cur.Values[1], cur.Values[0])
		}
	}
}

func TestSweepAttackerStatDoesNotMutateBuilds(t *testing.T) {
	build := plainBuild()
	_, err := Sweep(SweepRequest{
		Builds:  []Build{build},
		Enemy:   plainEnemy(),
		Stat:    StatMeleeCritical,
		Range:   DefaultRange(),
		Metric:  MetricExpectedDamage,
		Context: DefaultContext(),
	})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if build.Stats[StatMeleeCritical] != 1200 {
		t.Errorf("build mutated: meleeCritical = %v", build.Stats[StatMeleeCritical])
	}
}

func TestSweepSkillPotency(t *testing.T) {
	chart, err := Sweep(SweepRequest{
		Builds:  []Build{plainBuild()},
		Enemy:   plainEnemy(),
		Stat:    StatSkillPotency,
		Range:   Range{Min: 1, Max: 3, Step: 1},
		Metric:  MetricFinalDamage,
		Context: pveContext(),
	})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	for _, p := range chart.Points {
		if !almostEqual(p.Values[0], p.X*175) {
			t.Errorf("finalDamage at potency %v = %v, want %v", p.X, p.Values[0], p.X*175)
		}
	}
}

func TestSweepDPSMetric(t *testing.T) {
	timing := Timing{Cooldown: 9, CastTime: 1}
	chart, err := Sweep(SweepRequest{
		Builds:  []Build{plainBuild()},
		Enemy:   plainEnemy(),
		Stat:    StatBonusDamage,
		Range:   Range{Min: 0, Max: 0, Step: 1},
		Metric:  MetricDPS,
		Context: pveContext(),
		Timing:  timing,
	})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if got := chart.Points[0].Values[0]; !almostEqual(got, 17.5) {
		t.Errorf("dps = %v, want 17.5", got)
	}
}

func TestSweepErrors(t *testing.T) {
	base := SweepRequest{
		Builds:  []Build{plainBuild()},
		Enemy:   plainEnemy(),
		Stat:    StatMeleeEndurance,
		Range:   DefaultRange(),
		Metric:  MetricExpectedDamage,
		Context: DefaultContext(),
	}

	unknownStat := base
	unknownStat.Stat = "luck"
	if _, err := Sweep(unknownStat); !errors.Is(err, ErrUnknownStat) {
		t.Errorf("unknown stat error = %v, want ErrUnknownStat", err)
	}

	unknownMetric := base
	unknownMetric.Metric = "fun"
	if _, err := Sweep(unknownMetric); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("unknown metric error = %v, want ErrUnknownMetric", err)
	}

	badRange := base
	badRange.Range = Range{Min: 0, Max: 10, Step: 0}
	if _, err := Sweep(badRange); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("bad range error = %v, want ErrInvalidRange", err)
	}
}
