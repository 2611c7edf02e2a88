package reply

import (
	"fmt"
	"strconv"
	"strings"
)

var monthsGenitive = map[int]string{
	1:  "января",
	2:  "февраля",
	3:  "марта",
	4:  "апреля",
	5:  "мая",
	6:  "июня",
	7:  "июля",
	8:  "августа",
	9:  "сентября",
	10: "октября",
	11: "ноября",
	12: "декабря",
}

// ParsePaymentBlock reads a pasted payment record of two non-empty lines:
// "DD.MM.YYYY, HH:MM:SS" followed by the amount. It returns the timestamp as
// "26 сентября в 21:19" and the amount line untouched.
func ParsePaymentBlock(text string) (string, string, error) {
	lines := nonEmptyLines(text)
	if len(lines) < 2 {
		return "", "", ErrMalformedPayment
	}

	date, clock, ok := strings.Cut(lines[0], ", ")
	if !ok {
		return "", "", fmt.Errorf("не удалось разобрать дату %q: %w", lines[0], ErrMalformedPayment)
	}
	dateParts := strings.Split(date, ".")
	clockParts := strings.Split(clock, ":")
	if len(dateParts) < 2 || len(clockParts) < 2 {
		return "", "", fmt.Errorf("не удалось разобрать дату %q: %w", lines[0], ErrMalformedPayment)
	}

	day, err := strconv.Atoi(strings.TrimSpace(dateParts[0]))
	if err != nil {
		return "", "", fmt.Errorf("не удалось разобрать день %q: %w", dateParts[0], ErrMalformedPayment)
	}
	month, err := strconv.Atoi(strings.TrimSpace(dateParts[1]))
	if err != nil {
		return "", "", fmt.Errorf("не удалось разобрать месяц %q: %w", dateParts[1], ErrMalformedPayment)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(clockParts[0]))
	if err != nil {
		return "", "", fmt.Errorf("не удалось разобрать часы %q: %w", clockParts[0], ErrMalformedPayment)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(clockParts[1]))
	if err != nil {
		return "", "", fmt.Errorf("не удалось разобрать минуты %q: %w", clockParts[1], ErrMalformedPayment)
	}

	name, ok := monthsGenitive[month]
	if !ok {
		return "", "", fmt.Errorf("месяц %d вне диапазона 1-12", month)
	}

	formatted := fmt.Sprintf("%d %s в %02d:%02d", day, name, hour, minute)
	return formatted, lines[1], nil
}
