package reply

import "testing"

func TestNamesMatchCatalog(t *testing.T) {
	names := Names()
	if len(names) != len(templates) {
		t.Fatalf("order lists %d names, catalog has %d", len(names), len(templates))
	}
	for _, name := range names {
		if _, ok := TemplateFor(name); !ok {
			t.Fatalf("listed template %q missing from catalog", name)
		}
	}
}

func TestKindFor(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"Шаблон 1 (РВ)", KindCommon},
		{"Шаблон 2 (Подробно)", KindCommon},
		{"Шаблон 3 (Отмена батча)", KindMulti},
		{"Шаблон 4 (Оплата частями)", KindPayment},
		{"Шаблон 5 (Поступление)", KindInflow},
	}
	for _, c := range cases {
		if got := KindFor(c.name); got != c.want {
			t.Fatalf("KindFor(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}
