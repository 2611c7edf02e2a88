package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type helpSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

var helpSections = []helpSection{
	{
		Title: "Стоимость заказа",
		Content: "Вставьте текст с разбивкой стоимости из карточки заказа. " +
			"Распознаются строки вида «Подача / 150 ₽ (за 5 км)» и однострочные «Время в пути 271 ₽». " +
			"Комментарий в двойных скобках ((так)) имеет приоритет над одинарным.",
	},
	{
		Title: "Шаблоны 1 и 2",
		Content: "Общие шаблоны требуют номер заказа и текст стоимости. " +
			"Строки расчёта переименовываются по правилам (например, «Повышенный спрос» становится «Повышающий коэффициент»), " +
			"итог считается автоматически по строкам ответа.",
	},
	{
		Title: "Шаблон 3 (Отмена батча)",
		Content: "Нужен текст расчёта маршрута и количество выполненных и общих вручений. " +
			"Расстояние и время извлекаются из текста; фраза об отмене подбирается по разнице счётчиков.",
	},
	{
		Title: "Шаблон 4 (Оплата частями)",
		Content: "Вставьте два блока пополнения, каждый из двух строк: " +
			"«26.09.2025, 21:19:41» и сумма на следующей строке.",
	},
	{
		Title: "Шаблон 5 (Поступление)",
		Content: "Заполните сумму, дату и время поступления; они подставляются в текст как есть.",
	},
}

// helpHandler returns the help sections; ?q= filters by case-insensitive
// substring over title and content.
func helpHandler(c *gin.Context) {
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == "" {
		c.JSON(http.StatusOK, gin.H{"sections": helpSections})
		return
	}
	matched := make([]helpSection, 0, len(helpSections))
	for _, s := range helpSections {
		if strings.Contains(strings.ToLower(s.Title), q) || strings.Contains(strings.ToLower(s.Content), q) {
			matched = append(matched, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{"sections": matched})
}
