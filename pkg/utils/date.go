package utils

import "time"

// SameYearMonth compara ano e mês de duas datas, ignorando o dia
func SameYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
