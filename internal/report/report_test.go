package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/paytracker/internal/models"
)

func tx(id, workerID, workerName, service, date string, hours, rate float64, status models.TransactionStatus, method models.PaymentMethod) models.Transaction {
	return models.Transaction{
		ID:            id,
		WorkerID:      workerID,
		WorkerName:    workerName,
		Service:       service,
		Date:          date,
		Hours:         hours,
		Rate:          rate,
		Total:         hours * rate,
		Status:        status,
		PaymentMethod: method,
	}
}

func TestPendingAndTotals(t *testing.T) {
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "Cleaning", "2025-08-10", 3, 25, models.StatusPaid, models.MethodCash),
		tx("2", "w1", "Maria", "Cleaning", "2025-08-11", 2, 25, models.StatusPending, models.MethodCash),
		tx("3", "w2", "James", "Delivery", "2025-08-12", 1, 20, models.StatusPending, models.MethodVenmo),
	}

	pending := Pending(txs)
	require.Len(t, pending, 2)
	assert.Equal(t, "2", pending[0].ID)
	assert.Equal(t, "3", pending[1].ID)

	assert.Equal(t, 70.0, TotalPending(txs))
	assert.Equal(t, 75.0, TotalRevenue(txs))

	// сумма всех итогов всегда раскладывается на pending и paid
	var total float64
	for _, entry := range txs {
		total += entry.Total
	}
	assert.Equal(t, total, TotalPending(txs)+TotalRevenue(txs))
}

func TestPending_Empty(t *testing.T) {
	assert.Empty(t, Pending(nil))
	assert.Zero(t, TotalPending(nil))
	assert.Zero(t, TotalRevenue(nil))
}

func TestRecent(t *testing.T) {
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "A", "2025-08-01", 1, 10, models.StatusPaid, models.MethodCash),
		tx("2", "w1", "Maria", "B", "2025-08-02", 1, 10, models.StatusPaid, models.MethodCash),
		tx("3", "w1", "Maria", "C", "2025-08-03", 1, 10, models.StatusPaid, models.MethodCash),
	}

	recent := Recent(txs, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].ID)
	assert.Equal(t, "2", recent[1].ID)

	// n по умолчанию 5 и не выходит за границы коллекции
	assert.Len(t, Recent(txs, 0), 3)
	assert.Empty(t, Recent(nil, 0))
}

func TestFilterTransactions(t *testing.T) {
	txs := []models.Transaction{
		tx("1", "w1", "Maria Rodriguez", "Apartment Cleaning", "2025-08-01", 1, 10, models.StatusPaid, models.MethodCash),
		tx("2", "w2", "James Wilson", "Delivery Service", "2025-08-02", 1, 10, models.StatusPaid, models.MethodCash),
	}

	assert.Len(t, FilterTransactions(txs, "maria"), 1)
	assert.Len(t, FilterTransactions(txs, "DELIVERY"), 1)
	assert.Len(t, FilterTransactions(txs, ""), 2)
	assert.Empty(t, FilterTransactions(txs, "plumbing"))
}

func TestFilterWorkers(t *testing.T) {
	workers := []models.Worker{
		{ID: "w1", Name: "Maria Rodriguez"},
		{ID: "w2", Name: "James Wilson"},
	}

	assert.Len(t, FilterWorkers(workers, "wil"), 1)
	assert.Len(t, FilterWorkers(workers, ""), 2)
}

func TestSummarize(t *testing.T) {
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "Cleaning", "2025-08-10", 3, 25, models.StatusPaid, models.MethodCash),
		tx("2", "w1", "Maria", "Cleaning", "2025-08-11", 2, 20, models.StatusPending, models.MethodCash),
	}

	s := Summarize(txs)
	assert.Equal(t, 75.0, s.TotalRevenue)
	assert.Equal(t, 1, s.PaidSessions)
	assert.Equal(t, 40.0, s.TotalPending)
	assert.Equal(t, 1, s.PendingSessions)
	assert.Equal(t, 2, s.Sessions)
	assert.Equal(t, 5.0, s.TotalHours)
	assert.Equal(t, 2.5, s.AvgHoursPerSession)
	assert.Equal(t, 22.5, s.AverageRate)
	assert.Equal(t, 57.5, s.AverageSessionValue)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.AverageRate)
	assert.Zero(t, s.AverageSessionValue)
	assert.Zero(t, s.AvgHoursPerSession)
}

func TestServiceBreakdown(t *testing.T) {
	templates := []models.ServiceTemplate{
		{Name: "A", DefaultRate: 25, EstimatedHours: 3},
		{Name: "B", DefaultRate: 20, EstimatedHours: 1},
	}
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "A", "2025-08-10", 2, 25, models.StatusPaid, models.MethodCash),
		tx("2", "w1", "Maria", "A", "2025-08-11", 2, 25, models.StatusPending, models.MethodCash),
	}

	breakdown := ServiceBreakdown(txs, templates)
	require.Len(t, breakdown, 1)

	// услуга B без выручки опущена, A присутствует с итогом 100
	assert.Equal(t, "A", breakdown[0].Name)
	assert.Equal(t, 100.0, breakdown[0].Total)
	assert.Equal(t, 2, breakdown[0].Sessions)
	assert.Equal(t, 4.0, breakdown[0].Hours)
	assert.Equal(t, 25.0, breakdown[0].AvgRate)
}

func TestMethodBreakdown(t *testing.T) {
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "A", "2025-08-10", 2, 25, models.StatusPaid, models.MethodVenmo),
		tx("2", "w1", "Maria", "A", "2025-08-11", 1, 25, models.StatusPending, models.MethodVenmo),
		tx("3", "w2", "James", "B", "2025-08-12", 1, 20, models.StatusPaid, models.MethodCash),
	}

	breakdown := MethodBreakdown(txs)
	require.Len(t, breakdown, 2)

	// порядок следует объявлению набора способов: Cash раньше Venmo
	assert.Equal(t, models.MethodCash, breakdown[0].Method)
	assert.Equal(t, 20.0, breakdown[0].Total)
	assert.Equal(t, models.MethodVenmo, breakdown[1].Method)
	assert.Equal(t, 75.0, breakdown[1].Total)
	assert.Equal(t, 2, breakdown[1].Sessions)
}

func TestCompareMonths(t *testing.T) {
	ref := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "A", "2025-08-10", 2, 25, models.StatusPaid, models.MethodCash),
		tx("2", "w1", "Maria", "A", "2025-07-20", 1, 30, models.StatusPaid, models.MethodCash),
		tx("3", "w1", "Maria", "A", "2025-06-01", 1, 99, models.StatusPaid, models.MethodCash),
	}

	cmp := CompareMonths(txs, ref)
	assert.Equal(t, 50.0, cmp.ThisMonth.Total)
	assert.Equal(t, 1, cmp.ThisMonth.Sessions)
	assert.Equal(t, 30.0, cmp.LastMonth.Total)
	require.NotNil(t, cmp.Delta)
	assert.Equal(t, 20.0, *cmp.Delta)
}

func TestCompareMonths_NoLastMonth(t *testing.T) {
	ref := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "A", "2025-08-10", 2, 25, models.StatusPaid, models.MethodCash),
	}

	cmp := CompareMonths(txs, ref)
	assert.Equal(t, 50.0, cmp.ThisMonth.Total)
	assert.Zero(t, cmp.LastMonth.Total)
	// прошлый месяц пуст — дельта не приводится
	assert.Nil(t, cmp.Delta)
}

func TestCompareMonths_JanuaryReference(t *testing.T) {
	// предыдущий месяц корректно переходит через границу года
	ref := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "A", "2024-12-31", 1, 40, models.StatusPaid, models.MethodCash),
		tx("2", "w1", "Maria", "A", "2025-01-02", 1, 50, models.StatusPaid, models.MethodCash),
	}

	cmp := CompareMonths(txs, ref)
	assert.Equal(t, 50.0, cmp.ThisMonth.Total)
	assert.Equal(t, 40.0, cmp.LastMonth.Total)
}

func TestInsightsFor(t *testing.T) {
	worker := models.Worker{ID: "w1", Name: "Maria", DefaultRate: 25}
	txs := []models.Transaction{
		tx("1", "w1", "Maria", "Cleaning", "2025-08-10", 3, 25, models.StatusPaid, models.MethodCash),
		tx("2", "w1", "Maria", "Delivery", "2025-08-12", 1, 20, models.StatusPending, models.MethodCash),
		tx("3", "w1", "Maria", "Cleaning", "2025-08-12", 2, 25, models.StatusPending, models.MethodCash),
		tx("4", "w2", "James", "Cleaning", "2025-08-13", 5, 30, models.StatusPaid, models.MethodCash),
	}

	ins := InsightsFor(worker, txs)
	assert.Equal(t, 3, ins.Sessions)
	assert.Equal(t, 75.0, ins.TotalEarned)
	assert.Equal(t, 70.0, ins.TotalPending)
	assert.Equal(t, 6.0, ins.TotalHours)
	assert.InDelta(t, 23.33, ins.AverageRate, 0.001)

	// при равных датах побеждает сессия, встретившаяся раньше
	require.NotNil(t, ins.MostRecent)
	assert.Equal(t, "2025-08-12", ins.MostRecent.Date)
	assert.Equal(t, "Delivery", ins.MostRecent.Service)

	// разрез по услугам в порядке первого появления
	require.Len(t, ins.Services, 2)
	assert.Equal(t, "Cleaning", ins.Services[0].Service)
	assert.Equal(t, 2, ins.Services[0].Sessions)
	assert.Equal(t, 125.0, ins.Services[0].Total)
	assert.Equal(t, 5.0, ins.Services[0].Hours)
	assert.Equal(t, "Delivery", ins.Services[1].Service)
}

func TestInsightsFor_NoSessions(t *testing.T) {
	worker := models.Worker{ID: "w1", Name: "Maria", DefaultRate: 25}

	ins := InsightsFor(worker, nil)
	assert.Zero(t, ins.Sessions)
	// без сессий средняя ставка падает на ставку по умолчанию
	assert.Equal(t, 25.0, ins.AverageRate)
	assert.Nil(t, ins.MostRecent)
	assert.Empty(t, ins.Services)
}
