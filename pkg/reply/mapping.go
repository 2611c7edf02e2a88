package reply

import "strings"

// orderedRule emits any still-unused label that starts with Source under the
// Display name. Rule order fixes the output line order.
type orderedRule struct {
	Source  string
	Display string
}

var orderedRules = []orderedRule{
	{"Подача", "Подача"},
	{"Время в пути", "Время в пути"},
	{"Километры в пути", "Километры в пути"},
	{"Повышенный спрос", "Повышающий коэффициент"},
	{"Ожидание у отправителя", "Ожидание у отправителя"},
	{"Ожидание у получателя", "Ожидание у получателя"},
	{"Доплаты", "Бонус за заказ"},
	{"Цена отмен клиентами", "Цена отмен клиентами"},
	{"Надбавка за заказ через колл-центр", "Надбавка за заказ через колл-центр"},
}

// exactFields are emitted verbatim on an exact label match, after the
// ordered pass. "Цена отмен клиентами" appears here too for the case the
// ordered pass already claimed it elsewhere; on this pass it is renamed.
var exactFields = []string{
	"Получение",
	"Дистанция возврата",
	"Цена платной подачи",
	"Время возврата",
	"Услуги 1 грузчика (кузов S)",
	"Услуги 1 грузчика (кузов L)",
	"Услуги 2 грузчиков (кузов XL)",
	"Услуги 1 грузчика (кузов M)",
	"Услуги 2 грузчиков (кузов L)",
	"Дополнительные кг",
	"Перевес более 20 кг",
	"Перевес до 10 кг",
	"Перевес 10–20 кг",
	"Девять коробок",
	"Успешный возврат посылки",
	"Компенсация парковки (30 минут)",
	"Цена отмен клиентами",
	"Успешное вручение посылки",
	"Время аренды",
}

// serviceRule matches a leftover label by case-insensitive substring and
// wraps it as an additional service. First matching rule wins.
type serviceRule struct {
	Needle  string
	Display string
}

var serviceRules = []serviceRule{
	{"От двери до двери", "От двери до двери"},
	{"Грузчики", "Грузчики"},
	{"Термокороб", "Термокороб"},
	{"Тяжёлая посылка", "Тяжёлая посылка"},
}

// BuildBodyLines maps parsed price rows to display lines in three passes
// that share one used set: prefix rules in fixed priority order, exact
// names, then additional-service substring rules. A label is emitted at most
// once; labels no rule claims are dropped.
func BuildBodyLines(prices *PriceData) []string {
	used := make(map[string]struct{})
	var body []string

	emit := func(label, display string) {
		e, _ := prices.Get(label)
		body = append(body, FormatLine(display, e.Amount, e.Comment))
		used[label] = struct{}{}
	}

	for _, rule := range orderedRules {
		for _, label := range prices.Labels() {
			if _, taken := used[label]; taken {
				continue
			}
			if strings.HasPrefix(label, rule.Source) {
				emit(label, rule.Display)
			}
		}
	}

	for _, name := range exactFields {
		for _, label := range prices.Labels() {
			if _, taken := used[label]; taken {
				continue
			}
			if label == name {
				display := name
				if name == "Цена отмен клиентами" {
					display = "Клиентские отмены"
				}
				emit(label, display)
			}
		}
	}

	for _, label := range prices.Labels() {
		if _, taken := used[label]; taken {
			continue
		}
		// Any leftover body-size label wins unconditionally; this check is
		// case-sensitive on purpose.
		if strings.Contains(label, "Кузов") {
			emit(label, "Дополнительные услуги «Размер кузова»")
			continue
		}
		lower := strings.ToLower(label)
		for _, rule := range serviceRules {
			if strings.Contains(lower, strings.ToLower(rule.Needle)) {
				emit(label, "Дополнительные услуги «"+rule.Display+"»")
				break
			}
		}
	}

	return body
}
