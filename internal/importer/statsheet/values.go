package statsheet

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	percentNumber = regexp.MustCompile(`([-\d.]+)%`)
	valueNoise    = strings.NewReplacer(",", "", "%", "", " ", "")
)

// ParseStatValue reads a sheet number. A comma followed by one or two final
// digits is a decimal comma ("631,8"); any other comma, space or percent sign
// is a separator. Trailing units such as "s" are ignored.
func ParseStatValue(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if m := decimalCommaPattern.FindStringSubmatch(value); m != nil {
		return parseLeading(strings.Join(strings.Fields(m[1]), "") + "." + m[2])
	}
	return parseLeading(valueNoise.Replace(value))
}

// ParsePercentage reads the number before a percent sign, falling back to
// ParseStatValue rules when there is none.
func ParsePercentage(value string) (float64, bool) {
	if m := percentNumber.FindStringSubmatch(value); m != nil {
		return parseLeading(m[1])
	}
	return parseLeading(valueNoise.Replace(strings.TrimSpace(value)))
}

// parseLeading parses the longest numeric prefix of s.
func parseLeading(s string) (float64, bool) {
	prefix := leadingNumber.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
