package reply

import (
	"errors"
	"testing"
)

func TestParsePaymentBlock(t *testing.T) {
	dt, amount, err := ParsePaymentBlock("26.09.2025, 21:19:41\n148 ₽")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dt != "26 сентября в 21:19" {
		t.Fatalf("datetime = %q", dt)
	}
	if amount != "148 ₽" {
		t.Fatalf("amount = %q", amount)
	}
}

func TestParsePaymentBlockPadsClock(t *testing.T) {
	dt, _, err := ParsePaymentBlock("01.03.2025, 9:05:00\n10 ₽")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dt != "1 марта в 09:05" {
		t.Fatalf("datetime = %q", dt)
	}
}

func TestParsePaymentBlockTooShort(t *testing.T) {
	_, _, err := ParsePaymentBlock("26.09.2025, 21:19:41")
	if !errors.Is(err, ErrMalformedPayment) {
		t.Fatalf("err = %v", err)
	}
}

func TestParsePaymentBlockBadMonth(t *testing.T) {
	_, _, err := ParsePaymentBlock("26.13.2025, 21:19:41\n148 ₽")
	if err == nil {
		t.Fatalf("expected error for month 13")
	}
}

func TestParsePaymentBlockBadDate(t *testing.T) {
	_, _, err := ParsePaymentBlock("не дата\n148 ₽")
	if !errors.Is(err, ErrMalformedPayment) {
		t.Fatalf("err = %v", err)
	}
}
