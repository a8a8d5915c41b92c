// Package statsheet imports builds and enemies from the text of the in-game
// character stat sheet, as copied from the game or an OCR of it.
//
// The sheet is a loose sequence of section headers, labels and values. The
// parser tolerates values on the label line or on the next line, thousands
// separators, decimal commas and trailing units. Stats the text does not
// mention are left out of the result rather than defaulted.
package statsheet

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	combat "github.com/louisbranch/tnl-dmg-calc/internal/combat/domain"
)

var (
	// ErrEmptyText indicates an import without any text.
	ErrEmptyText = errors.New("stat sheet text is empty")
	// ErrUnknownKind indicates an import target other than build or enemy.
	ErrUnknownKind = errors.New("unknown import kind")
)

const (
	DefaultBuildName = "Imported Build"
	DefaultEnemyName = "Imported Enemy"
)

// Kind selects what an import produces.
type Kind string

const (
	KindBuild Kind = "build"
	KindEnemy Kind = "enemy"
)

// ParseKind parses an import kind.
func ParseKind(value string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(value))); k {
	case KindBuild, KindEnemy:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
}

// Result is the outcome of Import. Only the record matching Kind is set.
type Result struct {
	Kind  Kind          `json:"kind"`
	Build *combat.Build `json:"build,omitempty"`
	Enemy *combat.Enemy `json:"enemy,omitempty"`
}

// Import parses text as kind. An empty name picks the kind's default name.
func Import(text, name string, kind Kind) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}
	name = strings.TrimSpace(name)
	switch kind {
	case KindBuild:
		if name == "" {
			name = DefaultBuildName
		}
		b := ParseBuild(text, name)
		return Result{Kind: kind, Build: &b}, nil
	case KindEnemy:
		if name == "" {
			name = DefaultEnemyName
		}
		e := ParseEnemy(text, name)
		return Result{Kind: kind, Enemy: &e}, nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// ParseBuild parses a stat sheet into a build. The first weapon damage range
// is the main hand; a second one is the off-hand, kept only when both of its
// ends are non-zero.
func ParseBuild(text, name string) combat.Build {
	s := parseSheet(sheetLines(text))
	b := combat.Build{Name: name, Stats: s.stats()}
	delete(b.Stats, combat.StatMinDMG)
	delete(b.Stats, combat.StatMaxDMG)
	if len(s.weapons) > 0 {
		b.MinDMG = s.weapons[0].min
		b.MaxDMG = s.weapons[0].max
	}
	if len(s.weapons) > 1 && s.weapons[1].min != 0 && s.weapons[1].max != 0 {
		b.Stats[combat.StatOffhandMinDMG] = s.weapons[1].min
		b.Stats[combat.StatOffhandMaxDMG] = s.weapons[1].max
	}
	return b
}

var weakenResistanceLine = regexp.MustCompile(`(?i)Weaken Resistance\s+([\d,]+)`)

// enemyStats lists the defensive stats an enemy import keeps. Missing or zero
// values fall back to the enemy form defaults.
var enemyStats = []combat.Stat{
	combat.StatMeleeEndurance, combat.StatRangedEndurance, combat.StatMagicEndurance,
	combat.StatMeleeEvasion, combat.StatRangedEvasion, combat.StatMagicEvasion,
	combat.StatMeleeHeavyAttackEvasion, combat.StatRangedHeavyAttackEvasion, combat.StatMagicHeavyAttackEvasion,
	combat.StatMeleeDefense, combat.StatRangedDefense, combat.StatMagicDefense,
	combat.StatDamageReduction, combat.StatSkillDamageResistance,
}

// enemyOptionalStats are kept only when the sheet has them.
var enemyOptionalStats = []combat.Stat{
	combat.StatShieldBlockChance,
	combat.StatCriticalDamageResistance,
}

// ParseEnemy parses a stat sheet into an enemy.
func ParseEnemy(text, name string) combat.Enemy {
	parsed := ParseBuild(text, name)
	defaults := combat.DefaultEnemy(name)

	e := combat.Enemy{Name: name, Stats: combat.Stats{}}
	for _, stat := range enemyStats {
		v := parsed.Stats.Get(stat)
		if v == 0 {
			v = defaults.Stats.Get(stat)
		}
		e.Stats[stat] = v
	}
	for _, stat := range enemyOptionalStats {
		if v, ok := parsed.Stats.Lookup(stat); ok {
			e.Stats[stat] = v
		}
	}
	e.Stats[combat.StatWeakenResistance] = weakenResistance(norm.NFKC.String(text))
	return e
}

// weakenResistance scans the whole text, headers included, for the weaken
// resistance rating. It is 0 when absent.
func weakenResistance(text string) float64 {
	m := weakenResistanceLine.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return float64(v)
}
