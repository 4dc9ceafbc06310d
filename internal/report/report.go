// Package report реализует отчётные вычисления над коллекциями рабочих
// сессий и работников: фильтры, сводные показатели, разрезы по услугам и
// способам оплаты, сравнение месяцев и показатели по работникам.
//
// Все функции чистые: входные коллекции не изменяются, повторный вызов на тех
// же данных даёт тот же результат. Пустой вход допустим везде — средние
// значения при нулевом количестве записей равны 0, деления на ноль нет.
package report

import (
	"math"
	"strings"
	"time"

	"github.com/magabrotheeeer/paytracker/internal/ledger"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Summary сводные показатели по всем рабочим сессиям.
type Summary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	PaidSessions        int     `json:"paid_sessions"`
	TotalPending        float64 `json:"total_pending"`
	PendingSessions     int     `json:"pending_sessions"`
	Sessions            int     `json:"sessions"`
	TotalHours          float64 `json:"total_hours"`
	AvgHoursPerSession  float64 `json:"avg_hours_per_session"`
	AverageRate         float64 `json:"average_rate"`
	AverageSessionValue float64 `json:"average_session_value"`
}

// ServiceStats показатели одной услуги из справочника.
type ServiceStats struct {
	Name     string  `json:"name"`
	Sessions int     `json:"sessions"`
	Hours    float64 `json:"hours"`
	Total    float64 `json:"total"`
	AvgRate  float64 `json:"avg_rate"`
}

// MethodStats показатели одного способа оплаты.
type MethodStats struct {
	Method   models.PaymentMethod `json:"method"`
	Total    float64              `json:"total"`
	Sessions int                  `json:"sessions"`
}

// MonthTotals итог одного календарного месяца.
type MonthTotals struct {
	Total    float64 `json:"total"`
	Sessions int     `json:"sessions"`
}

// MonthComparison сравнение текущего календарного месяца с предыдущим.
// Delta приводится только когда итог прошлого месяца ненулевой, иначе nil.
type MonthComparison struct {
	ThisMonth MonthTotals `json:"this_month"`
	LastMonth MonthTotals `json:"last_month"`
	Delta     *float64    `json:"delta,omitempty"`
}

// SessionRef ссылка на последнюю по дате рабочую сессию работника.
type SessionRef struct {
	Date    string `json:"date"`
	Service string `json:"service"`
}

// ServiceActivity показатели работника по одной услуге.
type ServiceActivity struct {
	Service  string  `json:"service"`
	Sessions int     `json:"sessions"`
	Total    float64 `json:"total"`
	Hours    float64 `json:"hours"`
}

// WorkerInsights показатели одного работника.
// AverageRate при отсутствии сессий равен ставке работника по умолчанию.
// MostRecent равен nil, если у работника нет ни одной сессии.
type WorkerInsights struct {
	WorkerID     string            `json:"worker_id"`
	Name         string            `json:"name"`
	DefaultRate  float64           `json:"default_rate"`
	TotalEarned  float64           `json:"total_earned"`
	TotalPending float64           `json:"total_pending"`
	TotalHours   float64           `json:"total_hours"`
	Sessions     int               `json:"sessions"`
	AverageRate  float64           `json:"average_rate"`
	MostRecent   *SessionRef       `json:"most_recent,omitempty"`
	Services     []ServiceActivity `json:"services,omitempty"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Pending возвращает подпоследовательность неоплаченных сессий с сохранением
// исходного порядка.
func Pending(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0)
	for _, tx := range txs {
		if tx.Status == models.StatusPending {
			out = append(out, tx)
		}
	}
	return out
}

// TotalPending возвращает сумму к выплате по всем неоплаченным сессиям.
func TotalPending(txs []models.Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.Status == models.StatusPending {
			sum += tx.Total
		}
	}
	return sum
}

// TotalRevenue возвращает сумму по всем оплаченным сессиям.
func TotalRevenue(txs []models.Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.Status == models.StatusPaid {
			sum += tx.Total
		}
	}
	return sum
}

// Recent возвращает последние n записей в порядке добавления, перевёрнутые —
// самая свежая первой. При n <= 0 берётся значение по умолчанию 5.
func Recent(txs []models.Transaction, n int) []models.Transaction {
	if n <= 0 {
		n = 5
	}
	if n > len(txs) {
		n = len(txs)
	}
	out := make([]models.Transaction, 0, n)
	for i := len(txs) - 1; i >= len(txs)-n; i-- {
		out = append(out, txs[i])
	}
	return out
}

// FilterTransactions возвращает сессии, у которых имя работника или услуга
// содержит подстроку term без учёта регистра. Пустой term совпадает со всеми.
func FilterTransactions(txs []models.Transaction, term string) []models.Transaction {
	term = strings.ToLower(term)
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.WorkerName), term) ||
			strings.Contains(strings.ToLower(tx.Service), term) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterWorkers возвращает работников, чьё имя содержит подстроку term без
// учёта регистра. Пустой term совпадает со всеми.
func FilterWorkers(workers []models.Worker, term string) []models.Worker {
	term = strings.ToLower(term)
	out := make([]models.Worker, 0, len(workers))
	for _, w := range workers {
		if strings.Contains(strings.ToLower(w.Name), term) {
			out = append(out, w)
		}
	}
	return out
}

// Summarize возвращает сводные показатели по всей коллекции сессий.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{Sessions: len(txs)}
	var rateSum, totalSum float64
	for _, tx := range txs {
		switch tx.Status {
		case models.StatusPaid:
			s.TotalRevenue += tx.Total
			s.PaidSessions++
		case models.StatusPending:
			s.TotalPending += tx.Total
			s.PendingSessions++
		}
		s.TotalHours += tx.Hours
		rateSum += tx.Rate
		totalSum += tx.Total
	}
	if len(txs) > 0 {
		n := float64(len(txs))
		s.AvgHoursPerSession = round1(s.TotalHours / n)
		s.AverageRate = round2(rateSum / n)
		s.AverageSessionValue = round2(totalSum / n)
	}
	return s
}

// ServiceBreakdown возвращает показатели по каждой услуге справочника в
// порядке следования шаблонов. Услуги с нулевой суммой опускаются.
func ServiceBreakdown(txs []models.Transaction, templates []models.ServiceTemplate) []ServiceStats {
	out := make([]ServiceStats, 0, len(templates))
	for _, tpl := range templates {
		stats := ServiceStats{Name: tpl.Name}
		var rateSum float64
		for _, tx := range txs {
			if tx.Service != tpl.Name {
				continue
			}
			stats.Sessions++
			stats.Hours += tx.Hours
			stats.Total += tx.Total
			rateSum += tx.Rate
		}
		if stats.Total <= 0 {
			continue
		}
		stats.AvgRate = round2(rateSum / float64(stats.Sessions))
		out = append(out, stats)
	}
	return out
}

// MethodBreakdown возвращает показатели по каждому способу оплаты в порядке
// объявления набора. Способы с нулевой суммой опускаются.
func MethodBreakdown(txs []models.Transaction) []MethodStats {
	out := make([]MethodStats, 0, len(models.PaymentMethods))
	for _, method := range models.PaymentMethods {
		stats := MethodStats{Method: method}
		for _, tx := range txs {
			if tx.PaymentMethod != method {
				continue
			}
			stats.Sessions++
			stats.Total += tx.Total
		}
		if stats.Total <= 0 {
			continue
		}
		out = append(out, stats)
	}
	return out
}

// CompareMonths разбивает сессии на текущий и предыдущий календарные месяцы
// относительно ref (по совпадению года и месяца) и считает итог каждого.
// Сессии с неразбираемой датой пропускаются. Delta заполняется только когда
// итог прошлого месяца ненулевой.
func CompareMonths(txs []models.Transaction, ref time.Time) MonthComparison {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	prev := firstOfMonth.AddDate(0, -1, 0)

	var cmp MonthComparison
	for _, tx := range txs {
		date, err := time.Parse(ledger.DateLayout, tx.Date)
		if err != nil {
			continue
		}
		switch {
		case date.Year() == ref.Year() && date.Month() == ref.Month():
			cmp.ThisMonth.Total += tx.Total
			cmp.ThisMonth.Sessions++
		case date.Year() == prev.Year() && date.Month() == prev.Month():
			cmp.LastMonth.Total += tx.Total
			cmp.LastMonth.Sessions++
		}
	}
	if cmp.LastMonth.Total > 0 {
		delta := round2(cmp.ThisMonth.Total - cmp.LastMonth.Total)
		cmp.Delta = &delta
	}
	return cmp
}

// InsightsFor возвращает показатели работника по подмножеству сессий с его
// worker_id. Разрез по услугам идёт в порядке первого появления услуги.
// При равных датах последней считается сессия, встретившаяся раньше.
func InsightsFor(worker models.Worker, txs []models.Transaction) WorkerInsights {
	ins := WorkerInsights{
		WorkerID:    worker.ID,
		Name:        worker.Name,
		DefaultRate: worker.DefaultRate,
	}

	var rateSum float64
	byService := make(map[string]int)
	for _, tx := range txs {
		if tx.WorkerID != worker.ID {
			continue
		}
		ins.Sessions++
		ins.TotalHours += tx.Hours
		rateSum += tx.Rate
		switch tx.Status {
		case models.StatusPaid:
			ins.TotalEarned += tx.Total
		case models.StatusPending:
			ins.TotalPending += tx.Total
		}

		// Даты в формате 2006-01-02 корректно сравниваются как строки.
		if ins.MostRecent == nil || tx.Date > ins.MostRecent.Date {
			ins.MostRecent = &SessionRef{Date: tx.Date, Service: tx.Service}
		}

		idx, ok := byService[tx.Service]
		if !ok {
			idx = len(ins.Services)
			byService[tx.Service] = idx
			ins.Services = append(ins.Services, ServiceActivity{Service: tx.Service})
		}
		ins.Services[idx].Sessions++
		ins.Services[idx].Total += tx.Total
		ins.Services[idx].Hours += tx.Hours
	}

	if ins.Sessions > 0 {
		ins.AverageRate = round2(rateSum / float64(ins.Sessions))
	} else {
		ins.AverageRate = round2(worker.DefaultRate)
	}
	return ins
}
