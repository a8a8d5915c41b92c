package domain

import "testing"

func TestDetectDominantCombatType(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  CombatType
	}{
		{"no ratings ties to magic", Stats{}, Magic},
		{"melee", Stats{StatMeleeCritical: 900, StatMeleeHit: 100}, Melee},
		{"ranged", Stats{StatRangedHeavyAttack: 300, StatMeleeHit: 100}, Ranged},
		{"magic", Stats{StatMagicHit: 3000, StatMeleeCritical: 2000}, Magic},
		{"melee and ranged tie", Stats{StatMeleeHit: 100, StatRangedHit: 100}, Ranged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDominantCombatType(Build{Stats: tt.stats}); got != tt.want {
				t.Errorf("DetectDominantCombatType(%v) = %v, want %v", tt.stats, got, tt.want)
			}
		})
	}
}

func TestSmartXAxisStat(t *testing.T) {
	tests := []struct {
		name       string
		stats      Stats
		combatType CombatType
		want       Stat
	}{
		{"low evasion", Stats{StatMagicEvasion: 500}, Magic, StatMagicEndurance},
		{"high evasion", Stats{StatMagicEvasion: 501}, Magic, StatMagicEvasion},
		{"other type evasion ignored", Stats{StatRangedEvasion: 2000}, Melee, StatMeleeEndurance},
		{"ranged evasion", Stats{StatRangedEvasion: 2000}, Ranged, StatRangedEvasion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SmartXAxisStat(Enemy{Stats: tt.stats}, tt.combatType); got != tt.want {
				t.Errorf("SmartXAxisStat(%v, %v) = %v, want %v", tt.stats, tt.combatType, got, tt.want)
			}
		})
	}
}
