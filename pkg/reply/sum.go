package reply

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// bodyAmountRE matches a composed body line "— <name>: <amount> ₽" and
// captures the amount, allowing whitespace thousand separators and a decimal
// point.
var bodyAmountRE = regexp.MustCompile(`— .*?: (\d[\d\s.]*)\s*₽`)

// SumRubleDigits sums every body-format amount found in an already composed
// reply and renders the total rounded to whole rubles, half away from zero.
// Text with no matching lines yields "0 ₽". The scan is template-agnostic:
// it works on any text containing body lines, including a rendered template
// whose total slot still holds a sentinel.
func SumRubleDigits(resultText string) string {
	total := decimal.Zero
	for _, m := range bodyAmountRE.FindAllStringSubmatch(resultText, -1) {
		raw := strings.ReplaceAll(m[1], " ", "")
		raw = strings.ReplaceAll(raw, ",", ".")
		raw = strings.TrimSuffix(raw, ".")
		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	return total.Round(0).String() + " ₽"
}
