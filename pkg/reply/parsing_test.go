package reply

import "testing"

func TestParseTwoLinePair(t *testing.T) {
	data := ParsePriceLines("Подача\n150 ₽")
	e, ok := data.Get("Подача")
	if !ok {
		t.Fatalf("expected label to be parsed")
	}
	if e.Amount != "150 ₽" || e.Comment != "" {
		t.Fatalf("got %+v", e)
	}
}

func TestParseDoubledParensWinOverSingle(t *testing.T) {
	data := ParsePriceLines("Подача\n150 ₽ ((за 5 км.))")
	e, _ := data.Get("Подача")
	if e.Comment != "за 5 км" {
		t.Fatalf("comment = %q", e.Comment)
	}
}

func TestParseOneLineShape(t *testing.T) {
	data := ParsePriceLines("Время в пути 271 ₽ (38 мин.)")
	e, ok := data.Get("Время в пути")
	if !ok {
		t.Fatalf("inline row missed")
	}
	if e.Amount != "271 ₽" {
		t.Fatalf("amount = %q", e.Amount)
	}
	if e.Comment != "38 мин" {
		t.Fatalf("comment = %q", e.Comment)
	}
}

func TestParseSkipsJunkSilently(t *testing.T) {
	data := ParsePriceLines("какой-то мусор\nещё мусор без цены")
	if data.Len() != 0 {
		t.Fatalf("expected empty result, got %d rows", data.Len())
	}
}

func TestParsePreservesLineOrder(t *testing.T) {
	data := ParsePriceLines("Получение\n50 ₽\nПодача\n150 ₽")
	labels := data.Labels()
	if len(labels) != 2 || labels[0] != "Получение" || labels[1] != "Подача" {
		t.Fatalf("labels = %v", labels)
	}
}

func TestParseOneLineAfterTwoLine(t *testing.T) {
	// The amount line of a pair can itself be an inline row; both must land.
	data := ParsePriceLines("Подача 100 ₽\n50 ₽ (x)")
	if _, ok := data.Get("Подача"); !ok {
		t.Fatalf("inline row on the first line missed")
	}
	e, ok := data.Get("Подача 100 ₽")
	if !ok {
		t.Fatalf("two-line pair missed")
	}
	if e.Amount != "50 ₽" || e.Comment != "x" {
		t.Fatalf("got %+v", e)
	}
}

func TestParseOverwriteKeepsFirstPosition(t *testing.T) {
	data := ParsePriceLines("Подача\n100 ₽\nПолучение\n20 ₽\nПодача\n300 ₽")
	labels := data.Labels()
	if len(labels) != 2 || labels[0] != "Подача" {
		t.Fatalf("labels = %v", labels)
	}
	e, _ := data.Get("Подача")
	if e.Amount != "300 ₽" {
		t.Fatalf("amount = %q", e.Amount)
	}
}
