// Package timespan содержит вычисление длительности рабочей сессии по двум
// отметкам времени в пределах одного дня.
package timespan

import "time"

// Layout формат отметки времени начала и конца сессии.
const Layout = "15:04"

// Hours возвращает длительность интервала между start и end в часах
// (десятичная дробь). Если одна из отметок пустая или не разбирается,
// результат 0. Если end раньше start, результат 0 — переход через полночь
// не поддерживается.
func Hours(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}
	from, err := time.Parse(Layout, start)
	if err != nil {
		return 0
	}
	to, err := time.Parse(Layout, end)
	if err != nil {
		return 0
	}
	diff := to.Sub(from).Hours()
	if diff < 0 {
		return 0
	}
	return diff
}
