package reply

// PluralWord declines "вручение" to agree with n.
func PluralWord(n int) string {
	if n%100 >= 11 && n%100 <= 19 {
		return "вручений"
	}
	switch n % 10 {
	case 1:
		return "вручение"
	case 2, 3, 4:
		return "вручения"
	}
	return "вручений"
}

// CancelText picks the cancellation sentence for a batch where done out of
// total deliveries were completed.
func CancelText(done, total int) string {
	switch diff := total - done; {
	case diff == 1:
		return "Одно из вручений было отменено, поэтому оно не вошло в расчёт, и стоимость доставки изменилась."
	case diff > 1:
		return "Несколько вручений были отменены, поэтому они не были учтены при расчёте, и стоимость доставки изменилась."
	}
	return "Все вручения были выполнены успешно!"
}
