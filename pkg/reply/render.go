package reply

import (
	"strconv"
	"strings"
)

// Slot is one named placeholder value for a template.
type Slot struct {
	Name  string
	Value string
}

// Fill substitutes slots into a template body. Only the first occurrence of
// each {name} is replaced, so a pasted value containing a placeholder-looking
// fragment cannot be expanded again.
func Fill(template string, slots []Slot) string {
	out := template
	for _, s := range slots {
		out = strings.Replace(out, "{"+s.Name+"}", s.Value, 1)
	}
	return out
}

// Input carries everything a reply can be generated from. Which fields are
// required depends on the template kind; the rest are ignored.
type Input struct {
	OrderNumber  string
	PriceText    string
	CalcText     string
	Done         string
	Total        string
	Payment1     string
	Payment2     string
	InflowAmount string
	InflowDate   string
	InflowTime   string
}

// Generate renders the named template from the input. Missing required
// fields come back as *ValidationError; an unknown template name as
// ErrUnknownTemplate.
func Generate(templateName string, in Input) (string, error) {
	body, ok := TemplateFor(templateName)
	if !ok {
		return "", ErrUnknownTemplate
	}
	switch KindFor(templateName) {
	case KindMulti:
		return generateBatch(body, in)
	case KindPayment:
		return generatePayment(body, in)
	case KindInflow:
		return generateInflow(body, in)
	}
	return generateCommon(body, in)
}

// totalSentinel holds the {total} slot while the body lines are summed. The
// sum scan runs over the already rendered text, so the real total can only be
// written after every body amount is in place.
const totalSentinel = "TEMP_TOTAL"

func generateCommon(template string, in Input) (string, error) {
	if strings.TrimSpace(in.OrderNumber) == "" {
		return "", &ValidationError{Field: "order_number", Message: "Пожалуйста, введите номер заказа"}
	}
	if strings.TrimSpace(in.PriceText) == "" {
		return "", &ValidationError{Field: "price_text", Message: "Пожалуйста, введите данные о стоимости"}
	}

	prices := ParsePriceLines(in.PriceText)
	bodyLines := strings.Join(BuildBodyLines(prices), "\n")

	tmp := Fill(template, []Slot{
		{"order_number", strings.TrimSpace(in.OrderNumber)},
		{"body", bodyLines},
		{"total", totalSentinel},
	})
	return strings.Replace(tmp, totalSentinel, SumRubleDigits(tmp), 1), nil
}

func generateBatch(template string, in Input) (string, error) {
	if strings.TrimSpace(in.CalcText) == "" {
		return "", &ValidationError{Field: "calc_text", Message: "Пожалуйста, введите данные о расчёте"}
	}
	if strings.TrimSpace(in.Done) == "" || strings.TrimSpace(in.Total) == "" {
		return "", &ValidationError{Field: "done", Message: "Пожалуйста, введите количество выполненных и общее количество вручений"}
	}

	// Non-numeric counts degrade to zero rather than fail; the counts only
	// steer the wording.
	done, _ := strconv.Atoi(strings.TrimSpace(in.Done))
	total, _ := strconv.Atoi(strings.TrimSpace(in.Total))

	return Fill(template, []Slot{
		{"distance", ExtractDistance(in.CalcText)},
		{"time", ExtractDuration(in.CalcText)},
		{"done_count", strconv.Itoa(done)},
		{"done_word", PluralWord(done)},
		{"total_count", strconv.Itoa(total)},
		{"cancel_text", CancelText(done, total)},
	}), nil
}

func generatePayment(template string, in Input) (string, error) {
	if strings.TrimSpace(in.Payment1) == "" || strings.TrimSpace(in.Payment2) == "" {
		return "", &ValidationError{Field: "payment1", Message: "Пожалуйста, введите данные для обоих пополнений"}
	}
	dt1, amount1, err := ParsePaymentBlock(in.Payment1)
	if err != nil {
		return "", err
	}
	dt2, amount2, err := ParsePaymentBlock(in.Payment2)
	if err != nil {
		return "", err
	}
	return Fill(template, []Slot{
		{"amount1", amount1},
		{"amount2", amount2},
		{"datetime1", dt1},
		{"datetime2", dt2},
	}), nil
}

func generateInflow(template string, in Input) (string, error) {
	if strings.TrimSpace(in.InflowAmount) == "" || strings.TrimSpace(in.InflowDate) == "" || strings.TrimSpace(in.InflowTime) == "" {
		return "", &ValidationError{Field: "inflow_amount", Message: "Пожалуйста, заполните сумму, дату и время поступления"}
	}
	return Fill(template, []Slot{
		{"inflow_amount", strings.TrimSpace(in.InflowAmount)},
		{"inflow_date", strings.TrimSpace(in.InflowDate)},
		{"inflow_time", strings.TrimSpace(in.InflowTime)},
	}), nil
}
