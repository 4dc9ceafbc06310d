// Package services содержит бизнес-логику учёта работников и рабочих сессий.
package services

import (
	"log/slog"
	"time"

	"github.com/magabrotheeeer/paytracker/internal/lib/timespan"
	"github.com/magabrotheeeer/paytracker/internal/models"
	"github.com/magabrotheeeer/paytracker/internal/report"
	"github.com/magabrotheeeer/paytracker/internal/session"
)

// TrackerService связывает HTTP-обработчики с хранилищем сессии и отчётными
// вычислениями. Справочник услуг приходит из конфигурации и не мутируется.
type TrackerService struct {
	store     *session.Store
	templates []models.ServiceTemplate
	log       *slog.Logger
}

// NewTrackerService создает новый экземпляр TrackerService.
func NewTrackerService(store *session.Store, templates []models.ServiceTemplate, log *slog.Logger) *TrackerService {
	return &TrackerService{
		store:     store,
		templates: templates,
		log:       log,
	}
}

// Templates возвращает справочник услуг для подстановки ставки и часов.
func (s *TrackerService) Templates() []models.ServiceTemplate {
	out := make([]models.ServiceTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

// AddWorker добавляет нового работника и возвращает созданную запись.
func (s *TrackerService) AddWorker(req models.DummyWorker) (models.Worker, error) {
	worker, err := s.store.AddWorker(models.WorkerDraft{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		DefaultRate: req.DefaultRate,
		Skills:      req.Skills,
	})
	if err != nil {
		return models.Worker{}, err
	}
	s.log.Info("added new worker", slog.String("id", worker.ID))
	return worker, nil
}

// UpdateWorker заменяет данные работника с указанным id.
func (s *TrackerService) UpdateWorker(id string, req models.DummyWorker) (models.Worker, error) {
	worker, err := s.store.UpdateWorker(id, models.WorkerDraft{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		DefaultRate: req.DefaultRate,
		Skills:      req.Skills,
	})
	if err != nil {
		return models.Worker{}, err
	}
	s.log.Info("updated worker", slog.String("id", worker.ID))
	return worker, nil
}

// RemoveWorker удаляет работника с указанным id.
func (s *TrackerService) RemoveWorker(id string) error {
	if err := s.store.RemoveWorker(id); err != nil {
		return err
	}
	s.log.Info("removed worker", slog.String("id", id))
	return nil
}

// ListWorkers возвращает работников, отфильтрованных по подстроке имени.
func (s *TrackerService) ListWorkers(search string) []models.Worker {
	return report.FilterWorkers(s.store.Workers(), search)
}

// RecordTransaction записывает новую рабочую сессию. Если часы не переданы,
// но заданы обе отметки времени, длительность вычисляется из интервала.
func (s *TrackerService) RecordTransaction(req models.DummyTransaction) (models.Transaction, error) {
	hours := req.Hours
	if hours == 0 && req.StartTime != "" && req.EndTime != "" {
		hours = timespan.Hours(req.StartTime, req.EndTime)
	}

	tx, err := s.store.RecordTransaction(models.TransactionDraft{
		WorkerID:      req.WorkerID,
		Service:       req.Service,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Hours:         hours,
		Rate:          req.Rate,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	})
	if err != nil {
		return models.Transaction{}, err
	}
	s.log.Info("recorded work session",
		slog.String("id", tx.ID),
		slog.String("worker", tx.WorkerName),
		slog.Float64("total", tx.Total))
	return tx, nil
}

// MarkPaid переводит сессию в статус Paid.
func (s *TrackerService) MarkPaid(id string) (models.Transaction, error) {
	tx, err := s.store.MarkPaid(id)
	if err != nil {
		return models.Transaction{}, err
	}
	s.log.Info("payment completed",
		slog.String("id", tx.ID),
		slog.Float64("total", tx.Total))
	return tx, nil
}

// RemoveTransaction удаляет рабочую сессию с указанным id.
func (s *TrackerService) RemoveTransaction(id string) error {
	if err := s.store.RemoveTransaction(id); err != nil {
		return err
	}
	s.log.Info("removed transaction", slog.String("id", id))
	return nil
}

// ListTransactions возвращает сессии, отфильтрованные по подстроке имени
// работника или услуги.
func (s *TrackerService) ListTransactions(search string) []models.Transaction {
	return report.FilterTransactions(s.store.Transactions(), search)
}

// PendingReport возвращает неоплаченные сессии и их общую сумму.
func (s *TrackerService) PendingReport() ([]models.Transaction, float64) {
	txs := s.store.Transactions()
	return report.Pending(txs), report.TotalPending(txs)
}

// RecentTransactions возвращает n последних сессий, самая свежая первой.
func (s *TrackerService) RecentTransactions(n int) []models.Transaction {
	return report.Recent(s.store.Transactions(), n)
}

// Summary возвращает сводные показатели по всем сессиям.
func (s *TrackerService) Summary() report.Summary {
	return report.Summarize(s.store.Transactions())
}

// ServiceBreakdown возвращает разрез по услугам справочника.
func (s *TrackerService) ServiceBreakdown() []report.ServiceStats {
	return report.ServiceBreakdown(s.store.Transactions(), s.templates)
}

// MethodBreakdown возвращает разрез по способам оплаты.
func (s *TrackerService) MethodBreakdown() []report.MethodStats {
	return report.MethodBreakdown(s.store.Transactions())
}

// CompareMonths сравнивает текущий календарный месяц с предыдущим.
func (s *TrackerService) CompareMonths() report.MonthComparison {
	return report.CompareMonths(s.store.Transactions(), time.Now())
}

// WorkerInsights возвращает показатели по каждому работнику в порядке
// коллекции. Висячие worker_id в сессиях не мешают расчёту: такие сессии
// просто не попадают ни к одному работнику.
func (s *TrackerService) WorkerInsights() []report.WorkerInsights {
	workers, txs := s.store.Snapshot()
	out := make([]report.WorkerInsights, 0, len(workers))
	for _, w := range workers {
		out = append(out, report.InsightsFor(w, txs))
	}
	return out
}
