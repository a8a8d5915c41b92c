package statsheet

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// mainStatsMarker precedes the stat list in the character sheet. Everything
// up to its last occurrence is navigation text.
const mainStatsMarker = "Main Stats"

type tokenKind int

const (
	tokenStatName tokenKind = iota
	tokenHeader
	tokenWeaponDamage
	tokenSeparator
	tokenValue
)

type token struct {
	kind    tokenKind
	content string
}

var headers = map[string]bool{
	"Search for stats..": true,
	"Favorites":          true,
	"Attack":             true,
	"Critical":           true,
	"Hit":                true,
	"Protection":         true,
	"Attributes":         true,
	"Resources":          true,
	"Movement":           true,
	"Skills":             true,
	"Resistance":         true,
	"Crowd Control":      true,
	"PvP":                true,
	"Boss":               true,
	"Missing":            true,
}

var (
	valuePattern        = regexp.MustCompile(`^[-\d,\s]+\.?\d*%?s?$`)
	percentOnlyPattern  = regexp.MustCompile(`^\((\d+\.?\d*)%\)$`)
	decimalCommaPattern = regexp.MustCompile(`^([\d\s]+),(\d{1,2})$`)
	inlinePercentLine   = regexp.MustCompile(`^(.+?)\s+([\d,\s.-]+)\s*\((\d+\.?\d*)%\)$`)
	inlineValueLine     = regexp.MustCompile(`^(.+?)\s+([-\d,\s.%]+s?)$`)
)

// sheetLines normalizes text and returns the trimmed non-empty lines after
// the last "Main Stats" line.
func sheetLines(text string) []string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	last := -1
	for i, line := range lines {
		if strings.Contains(line, mainStatsMarker) {
			last = i
		}
	}
	return lines[last+1:]
}

func tokenize(lines []string) []token {
	tokens := make([]token, 0, len(lines))
	for _, line := range lines {
		kind := tokenStatName
		switch {
		case headers[line]:
			kind = tokenHeader
		case line == "Max Damage":
			kind = tokenWeaponDamage
		case line == "~":
			kind = tokenSeparator
		case valuePattern.MatchString(line), percentOnlyPattern.MatchString(line), decimalCommaPattern.MatchString(line):
			kind = tokenValue
		}
		tokens = append(tokens, token{kind: kind, content: line})
	}
	return tokens
}
