package domain

// EvasionThreshold is the evasion above which charts default to sweeping
// evasion instead of endurance.
const EvasionThreshold = 500

// DetectDominantCombatType returns the combat type the build has invested in
// most, summing critical, hit and heavy ratings. Ties favour magic, then ranged.
func DetectDominantCombatType(b Build) CombatType {
	score := func(ct CombatType) float64 {
		keys := combatKeys[ct]
		return b.Stats.Get(keys.critical) + b.Stats.Get(keys.hit) + b.Stats.Get(keys.heavy)
	}
	melee, ranged, magic := score(Melee), score(Ranged), score(Magic)
	switch {
	case magic >= melee && magic >= ranged:
		return Magic
	case ranged >= melee:
		return Ranged
	default:
		return Melee
	}
}

// SmartXAxisStat picks the defender stat most worth charting for combatType:
// evasion when the enemy dodges a lot, endurance otherwise.
func SmartXAxisStat(e Enemy, combatType CombatType) Stat {
	keys, ok := combatKeys[combatType]
	if !ok {
		keys = combatKeys[Magic]
	}
	if e.Stats.Get(keys.evasion) > EvasionThreshold {
		return keys.evasion
	}
	return keys.endurance
}
