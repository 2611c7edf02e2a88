package reply

import (
	"regexp"
	"strings"
)

// Distance patterns: an inline "<number> км|м" anywhere in the block is
// preferred; otherwise the value is read after the "Расчётное расстояние"
// label. Both tolerate "4,60км", trailing periods and NBSP.
var (
	distanceInlineRE = regexp.MustCompile(`(?i)([\d.,]+)\s*[\x{00A0}\s]*?(км|м)\.?`)
	distanceLabelRE  = regexp.MustCompile(`(?i)Расч[её]тное расстояние[\s:\-]*[\r\n]+\s*([\d.,]+)\s*[\x{00A0}\s]*?(км|м)\.?`)
)

// Duration patterns: a unit token anywhere gates the inline path; otherwise
// the raw value is the line after "Расчётное время".
var (
	timeTokenRE = regexp.MustCompile(`(?i)(\d+\s*ч\.?|\d+\s*мин\.?|\d+\s*сек\.?)`)
	timeLabelRE = regexp.MustCompile(`(?i)Расч[её]тное время[\s:\-]*[\r\n]+\s*([^\r\n]+)`)

	hoursRE   = regexp.MustCompile(`(\d+)\s*ч`)
	minutesRE = regexp.MustCompile(`(\d+)\s*мин`)
	secondsRE = regexp.MustCompile(`(\d+)\s*сек`)
)

// ExtractDistance pulls the route distance out of a calculation block and
// renders it as "<number> <unit>". When nothing matches it returns the
// literal placeholder "—".
func ExtractDistance(calcBlock string) string {
	if m := distanceInlineRE.FindStringSubmatch(calcBlock); m != nil {
		return strings.TrimSpace(m[1]) + " " + strings.TrimSpace(m[2])
	}
	if m := distanceLabelRE.FindStringSubmatch(calcBlock); m != nil {
		return strings.TrimSpace(m[1]) + " " + strings.TrimSpace(m[2])
	}
	return "—"
}

// ExtractDuration pulls the route duration out of a calculation block and
// renders it canonically ("H ч M мин S сек."). If no unit token appears
// inline, the line following the "Расчётное время" label is used; text with
// no recognizable units passes through unchanged.
func ExtractDuration(calcBlock string) string {
	raw := ""
	if timeTokenRE.MatchString(calcBlock) {
		raw = calcBlock
	} else if m := timeLabelRE.FindStringSubmatch(calcBlock); m != nil {
		raw = strings.TrimSpace(m[1])
	}
	return NormalizeComment(ParseTimeToMinutes(raw))
}

// ParseTimeToMinutes rebuilds a duration fragment into the canonical form.
// The first occurrence of each unit wins. Seconds keep a trailing period in
// every form that ends with them.
func ParseTimeToMinutes(text string) string {
	h := hoursRE.FindStringSubmatch(text)
	m := minutesRE.FindStringSubmatch(text)
	s := secondsRE.FindStringSubmatch(text)

	switch {
	case h != nil && m != nil && s != nil:
		return h[1] + " ч " + m[1] + " мин " + s[1] + " сек."
	case h != nil && m != nil:
		return h[1] + " ч " + m[1] + " мин"
	case m != nil && s != nil:
		return m[1] + " мин " + s[1] + " сек."
	case m != nil:
		return m[1] + " мин"
	case h != nil:
		return h[1] + " ч"
	case s != nil:
		return s[1] + " сек."
	}
	return text
}
