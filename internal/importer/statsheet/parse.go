package statsheet

import "strings"

const (
	attackSpeedLabel     = "Attack Speed"
	attackSpeedTimeLabel = "Attack Speed Time"
	percentSuffix        = " Percent"
)

// sheet holds the raw text of every labelled value found in a stat sheet,
// plus up to two weapon damage ranges.
type sheet struct {
	values  map[string]string
	weapons []weaponRange
}

type weaponRange struct {
	min, max float64
}

func (s *sheet) set(label, value string) {
	if label == attackSpeedLabel && strings.HasSuffix(value, "s") {
		label = attackSpeedTimeLabel
	}
	s.values[label] = value
}

func (s *sheet) lookup(label string) (string, bool) {
	v, ok := s.values[label]
	return v, ok
}

// parseSheet walks the tokens in order. Labels either carry their value on
// the same line ("Melee Defense 1,234", "Melee Endurance 1,234 (23.4%)") or
// on the following value token, optionally followed by a "(n%)" token.
func parseSheet(lines []string) sheet {
	tokens := tokenize(lines)
	s := sheet{values: make(map[string]string)}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.kind {
		case tokenWeaponDamage:
			if i+3 < len(tokens) &&
				tokens[i+1].kind == tokenValue &&
				tokens[i+2].kind == tokenSeparator &&
				tokens[i+3].kind == tokenValue {
				minDMG, _ := ParseStatValue(tokens[i+1].content)
				maxDMG, _ := ParseStatValue(tokens[i+3].content)
				if len(s.weapons) < 2 {
					s.weapons = append(s.weapons, weaponRange{min: minDMG, max: maxDMG})
				}
				i += 3
			}
		case tokenStatName:
			i += s.parseStat(tokens, i)
		}
	}
	return s
}

// parseStat records the stat at tokens[i] and returns how many following
// tokens it consumed.
func (s *sheet) parseStat(tokens []token, i int) int {
	line := tokens[i].content

	if m := inlinePercentLine.FindStringSubmatch(line); m != nil {
		label := strings.TrimSpace(m[1])
		s.values[label] = strings.TrimSpace(m[2])
		s.values[label+percentSuffix] = m[3]
		return 0
	}
	if m := inlineValueLine.FindStringSubmatch(line); m != nil {
		s.set(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
		return 0
	}

	if i+1 >= len(tokens) || tokens[i+1].kind != tokenValue {
		return 0
	}
	value := tokens[i+1].content
	if i+2 < len(tokens) && tokens[i+2].kind == tokenValue {
		if m := percentOnlyPattern.FindStringSubmatch(tokens[i+2].content); m != nil {
			s.values[line] = value
			s.values[line+percentSuffix] = m[1]
			return 2
		}
	}
	s.set(line, value)
	return 1
}
