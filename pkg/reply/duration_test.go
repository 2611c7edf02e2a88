package reply

import "testing"

func TestExtractDistanceInline(t *testing.T) {
	if got := ExtractDistance("маршрут 4,60км туда"); got != "4,60 км" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractDistanceLabel(t *testing.T) {
	got := ExtractDistance("Расчётное расстояние:\n12.3 км.")
	if got != "12.3 км" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractDistanceMissing(t *testing.T) {
	if got := ExtractDistance("ничего полезного"); got != "—" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractDurationCanonical(t *testing.T) {
	got := ExtractDuration("Расчётное время\n43 мин. 4 сек.")
	if got != "43 мин 4 сек." {
		t.Fatalf("got %q", got)
	}
}

func TestExtractDurationLabelFallback(t *testing.T) {
	got := ExtractDuration("Расчётное время:\nоколо получаса")
	if got != "около получаса" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractDurationMissing(t *testing.T) {
	if got := ExtractDuration("пустой блок"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1 ч 5 мин 30 сек", "1 ч 5 мин 30 сек."},
		{"2 ч 10 мин", "2 ч 10 мин"},
		{"43 мин 4 сек", "43 мин 4 сек."},
		{"38 мин", "38 мин"},
		{"2 ч", "2 ч"},
		{"15 сек", "15 сек."},
		{"просто текст", "просто текст"},
	}
	for _, c := range cases {
		if got := ParseTimeToMinutes(c.in); got != c.want {
			t.Fatalf("ParseTimeToMinutes(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
