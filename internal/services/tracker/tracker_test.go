package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/paytracker/internal/ledger"
	"github.com/magabrotheeeer/paytracker/internal/models"
	"github.com/magabrotheeeer/paytracker/internal/session"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newService(t *testing.T) *TrackerService {
	t.Helper()
	templates := []models.ServiceTemplate{
		{Name: "Cleaning", DefaultRate: 25, EstimatedHours: 3},
		{Name: "Delivery", DefaultRate: 20, EstimatedHours: 1},
	}
	return NewTrackerService(session.New(), templates, newNoopLogger())
}

func addWorker(t *testing.T, svc *TrackerService) models.Worker {
	t.Helper()
	worker, err := svc.AddWorker(models.DummyWorker{
		Name:        "Ana",
		Phone:       "1",
		Email:       "a@a.com",
		DefaultRate: 20,
	})
	require.NoError(t, err)
	return worker
}

func TestTracker_RecordAndPayScenario(t *testing.T) {
	svc := newService(t)
	worker := addWorker(t, svc)

	tx, err := svc.RecordTransaction(models.DummyTransaction{
		WorkerID: worker.ID,
		Service:  "Cleaning",
		Date:     "2025-01-01",
		Hours:    2,
		Rate:     20,
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, tx.Total)
	assert.Equal(t, models.StatusPending, tx.Status)

	pending, total := svc.PendingReport()
	require.Len(t, pending, 1)
	assert.Equal(t, 40.0, total)

	paid, err := svc.MarkPaid(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, paid.Status)

	pending, total = svc.PendingReport()
	assert.Empty(t, pending)
	assert.Zero(t, total)
	assert.Equal(t, 40.0, svc.Summary().TotalRevenue)
}

func TestTracker_DerivesHoursFromTimes(t *testing.T) {
	svc := newService(t)
	worker := addWorker(t, svc)

	tx, err := svc.RecordTransaction(models.DummyTransaction{
		WorkerID:  worker.ID,
		Service:   "Cleaning",
		Date:      "2025-01-01",
		StartTime: "09:00",
		EndTime:   "12:00",
		Rate:      20,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, tx.Hours)
	assert.Equal(t, 60.0, tx.Total)
}

func TestTracker_ReversedTimesRejected(t *testing.T) {
	svc := newService(t)
	worker := addWorker(t, svc)

	// интервал через полночь схлопывается в 0 часов и не проходит валидацию
	_, err := svc.RecordTransaction(models.DummyTransaction{
		WorkerID:  worker.ID,
		Service:   "Cleaning",
		Date:      "2025-01-01",
		StartTime: "12:00",
		EndTime:   "09:00",
		Rate:      20,
	})
	require.Error(t, err)

	var verrs ledger.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "hours", verrs[0].Field)
}

func TestTracker_ExplicitHoursWinOverTimes(t *testing.T) {
	svc := newService(t)
	worker := addWorker(t, svc)

	tx, err := svc.RecordTransaction(models.DummyTransaction{
		WorkerID:  worker.ID,
		Service:   "Cleaning",
		Date:      "2025-01-01",
		StartTime: "09:00",
		EndTime:   "12:00",
		Hours:     2.5,
		Rate:      20,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, tx.Hours)
}

func TestTracker_SearchFilters(t *testing.T) {
	svc := newService(t)
	worker := addWorker(t, svc)

	_, err := svc.RecordTransaction(models.DummyTransaction{
		WorkerID: worker.ID,
		Service:  "Cleaning",
		Date:     "2025-01-01",
		Hours:    1,
		Rate:     20,
	})
	require.NoError(t, err)

	assert.Len(t, svc.ListTransactions("clean"), 1)
	assert.Empty(t, svc.ListTransactions("delivery"))
	assert.Len(t, svc.ListWorkers("ana"), 1)
	assert.Empty(t, svc.ListWorkers("bob"))
}

func TestTracker_WorkerInsightsSurviveDanglingReferences(t *testing.T) {
	svc := newService(t)
	worker := addWorker(t, svc)
	other := addWorker(t, svc)

	_, err := svc.RecordTransaction(models.DummyTransaction{
		WorkerID: worker.ID,
		Service:  "Cleaning",
		Date:     "2025-01-01",
		Hours:    2,
		Rate:     20,
	})
	require.NoError(t, err)

	// жёсткое удаление работника оставляет висячий worker_id в истории
	require.NoError(t, svc.RemoveWorker(worker.ID))
	require.Len(t, svc.ListTransactions(""), 1)

	insights := svc.WorkerInsights()
	require.Len(t, insights, 1)
	assert.Equal(t, other.ID, insights[0].WorkerID)
	assert.Zero(t, insights[0].Sessions)
	assert.Equal(t, other.DefaultRate, insights[0].AverageRate)
}

func TestTracker_Templates(t *testing.T) {
	svc := newService(t)

	templates := svc.Templates()
	require.Len(t, templates, 2)

	templates[0].Name = "mutated"
	assert.Equal(t, "Cleaning", svc.Templates()[0].Name)
}
