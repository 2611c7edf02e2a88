package reply

import (
	"regexp"
	"strings"
)

// abbrevDotRE matches a metric abbreviation followed by a period. "сек" is
// deliberately absent: inside a parenthetical the seconds abbreviation
// usually closes the phrase and keeps its period.
var abbrevDotRE = regexp.MustCompile(`(ч|мин|км|кг|м|млн|млрд|трлн)\.`)

// NormalizeComment strips the period after common abbreviations
// ("5 км." -> "5 км", "12 сек." stays) and trims surrounding whitespace.
func NormalizeComment(comment string) string {
	return strings.TrimSpace(abbrevDotRE.ReplaceAllString(comment, "$1"))
}
