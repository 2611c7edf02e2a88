package reply

import "strings"

// Kind tells the generator which input fields a template consumes.
type Kind int

const (
	KindCommon Kind = iota
	KindMulti
	KindPayment
	KindInflow
)

var templateOrder = []string{
	"Шаблон 1 (РВ)",
	"Шаблон 2 (Подробно)",
	"Шаблон 3 (Отмена батча)",
	"Шаблон 4 (Оплата частями)",
	"Шаблон 5 (Поступление)",
}

var templates = map[string]string{
	"Шаблон 1 (РВ)": "Здравствуйте!\n" +
		"Проверили ваш заказ №{order_number}. Стоимость сложилась из следующих частей:\n" +
		"{body}\n" +
		"Итого: {total}\n" +
		"Если останутся вопросы, пожалуйста, напишите нам.",

	"Шаблон 2 (Подробно)": "Здравствуйте!\n" +
		"Мы разобрали расчёт стоимости по заказу №{order_number} подробно.\n" +
		"В расчёт вошли позиции:\n" +
		"{body}\n" +
		"Общая сумма по заказу: {total}\n" +
		"Каждая позиция рассчитывается по тарифу, действовавшему на момент оформления заказа.\n" +
		"Спасибо, что пользуетесь нашим сервисом!",

	"Шаблон 3 (Отмена батча)": "Здравствуйте!\n" +
		"Проверили ваш батч. Расчётное расстояние маршрута: {distance}, расчётное время: {time}.\n" +
		"Выполнено {done_count} {done_word} из {total_count}. {cancel_text}\n" +
		"Если у вас остались вопросы по расчёту, напишите нам.",

	"Шаблон 4 (Оплата частями)": "Здравствуйте!\n" +
		"Видим два пополнения по вашему заказу:\n" +
		"— {amount1} ({datetime1})\n" +
		"— {amount2} ({datetime2})\n" +
		"Обе суммы учтены. Если что-то не сходится, пожалуйста, сообщите нам.",

	"Шаблон 5 (Поступление)": "Здравствуйте!\n" +
		"Поступление на сумму {inflow_amount} зачислено {inflow_date} в {inflow_time}.\n" +
		"Средства уже доступны на балансе. Хорошего дня!",
}

// TemplateFor returns the template body by its display name.
func TemplateFor(name string) (string, bool) {
	body, ok := templates[name]
	return body, ok
}

// Names lists the template display names in catalog order.
func Names() []string {
	out := make([]string, len(templateOrder))
	copy(out, templateOrder)
	return out
}

// KindFor classifies a template by its display name. Unknown names fall back
// to the common kind; Generate rejects them before the kind matters.
func KindFor(name string) Kind {
	switch {
	case strings.Contains(name, "Отмена батча"):
		return KindMulti
	case strings.Contains(name, "Оплата частями"):
		return KindPayment
	case strings.Contains(name, "Поступление"):
		return KindInflow
	}
	return KindCommon
}
