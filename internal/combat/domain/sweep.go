package domain

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// MaxSweepPoints caps the number of x samples of one chart.
const MaxSweepPoints = 10000

var (
	// ErrInvalidRange indicates a sweep range that cannot be sampled.
	ErrInvalidRange = errors.New("invalid sweep range")
	// ErrUnknownMetric indicates a chart metric the engine does not produce.
	ErrUnknownMetric = errors.New("unknown chart metric")
	// ErrUnknownStat indicates a stat name that is not a record field.
	ErrUnknownStat = errors.New("unknown stat")
)

// Range is an inclusive x-axis sampling range.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// DefaultRange samples 0..3000 every 100 points.
func DefaultRange() Range {
	return Range{Min: 0, Max: 3000, Step: 100}
}

// Metric is a y-axis quantity of a chart.
type Metric string

const (
	MetricExpectedDamage Metric = "expectedDamage"
	MetricFinalDamage    Metric = "finalDamage"
	MetricCritChance     Metric = "critChance"
	MetricHitChance      Metric = "hitChance"
	MetricDPS            Metric = "dps"
)

// ParseMetric parses a metric name.
func ParseMetric(value string) (Metric, error) {
	switch m := Metric(value); m {
	case MetricExpectedDamage, MetricFinalDamage, MetricCritChance, MetricHitChance, MetricDPS:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, value)
}

// SweepRequest describes one chart.
type SweepRequest struct {
	Builds  []Build
	Enemy   Enemy
	Stat    Stat
	Range   Range
	Metric  Metric
	Context Context
	Timing  Timing
}

// Point is one x sample with one value per build, in build order.
type Point struct {
	X      float64   `json:"x"`
	Values []float64 `json:"values"`
}

// Chart is the sampled result of a sweep.
type Chart struct {
	Stat    Stat     `json:"stat"`
	Metric  Metric   `json:"metric"`
	Current float64  `json:"current"`
	Builds  []string `json:"builds"`
	Points  []Point  `json:"points"`
}

// XValues returns the sample positions of r, inserting current in sorted
// position when it lies inside the range and is not already sampled.
func XValues(r Range, current float64) ([]float64, error) {
	if !finite(r.Min) || !finite(r.Max) || !finite(r.Step) || r.Step <= 0 || r.Max < r.Min {
		return nil, fmt.Errorf("%w: min %v max %v step %v", ErrInvalidRange, r.Min, r.Max, r.Step)
	}
	count := int(math.Floor((r.Max-r.Min)/r.Step+1e-9)) + 1
	if count > MaxSweepPoints {
		return nil, fmt.Errorf("%w: %d samples exceeds %d", ErrInvalidRange, count, MaxSweepPoints)
	}

	values := make([]float64, 0, count+1)
	found := false
	for i := 0; i < count; i++ {
		x := r.Min + float64(i)*r.Step
		if x == current {
			found = true
		}
		values = append(values, x)
	}
	if !found && current >= r.Min && current <= r.Max {
		values = append(values, current)
		sort.Float64s(values)
	}
	return values, nil
}

// CurrentValue returns the value the swept stat currently has.
func CurrentValue(req SweepRequest) float64 {
	switch SideOf(req.Stat) {
	case SideDefender:
		return req.Enemy.Value(req.Stat)
	case SideAttacker:
		if len(req.Builds) > 0 {
			return req.Builds[0].Value(req.Stat)
		}
	case SideSkill:
		return req.Context.Skill.normalized().Potency
	}
	return 0
}

// Sample evaluates metric for one build with stat set to x.
func Sample(build Build, req SweepRequest, x float64) (float64, error) {
	enemy := req.Enemy
	ctx := req.Context
	switch SideOf(req.Stat) {
	case SideAttacker:
		build = build.With(req.Stat, x)
	case SideDefender:
		enemy = enemy.With(req.Stat, x)
	case SideSkill:
		ctx.Skill.Potency = x
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStat, req.Stat)
	}

	if req.Metric == MetricDPS {
		return CalculateDPS(build, enemy, ctx, req.Timing).DPS, nil
	}
	b := Calculate(build, enemy, ctx)
	switch req.Metric {
	case MetricExpectedDamage:
		return b.ExpectedDamage, nil
	case MetricFinalDamage:
		return b.FinalDamage, nil
	case MetricCritChance:
		return b.CritChance, nil
	case MetricHitChance:
		return b.HitChance, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, req.Metric)
}

// Sweep samples the metric across the range for every build. Builds are
// evaluated in parallel; samples share no state.
func Sweep(req SweepRequest) (Chart, error) {
	if SideOf(req.Stat) == SideUnknown {
		return Chart{}, fmt.Errorf("%w: %q", ErrUnknownStat, req.Stat)
	}
	if _, err := ParseMetric(string(req.Metric)); err != nil {
		return Chart{}, err
	}
	current := CurrentValue(req)
	xs, err := XValues(req.Range, current)
	if err != nil {
		return Chart{}, err
	}

	series := make([][]float64, len(req.Builds))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, build := range req.Builds {
		g.Go(func() error {
			values := make([]float64, len(xs))
			for j, x := range xs {
				v, err := Sample(build, req, x)
				if err != nil {
					return err
				}
				values[j] = v
			}
			series[i] = values
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Chart{}, err
	}

	names := make([]string, len(req.Builds))
	for i, b := range req.Builds {
		names[i] = b.Name
	}
	points := make([]Point, len(xs))
	for j, x := range xs {
		values := make([]float64, len(req.Builds))
		for i := range req.Builds {
			values[i] = series[i][j]
		}
		points[j] = Point{X: x, Values: values}
	}
	return Chart{
		Stat:    req.Stat,
		Metric:  req.Metric,
		Current: current,
		Builds:  names,
		Points:  points,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
