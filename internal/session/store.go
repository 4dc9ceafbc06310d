// Package session содержит хранилище состояния учёта на время жизни процесса.
//
// Store владеет текущими коллекциями работников и рабочих сессий и является
// единственным источником истины. Мутации сериализуются мьютексом — в каждый
// момент есть ровно один логический писатель, поэтому ни один читатель не
// увидит наполовину применённую мутацию. Сами коллекции неизменяемы: операция
// пакета ledger строит новую коллекцию, Store лишь атомарно подменяет ссылку.
// Наружу всегда выдаются копии срезов.
package session

import (
	"sync"
	"time"

	"github.com/magabrotheeeer/paytracker/internal/ledger"
	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Store хранилище коллекций на время сессии процесса.
type Store struct {
	mu      sync.RWMutex
	workers []models.Worker
	txs     []models.Transaction
	now     func() time.Time
}

// New создает пустое хранилище.
func New() *Store {
	return &Store{now: time.Now}
}

// Workers возвращает копию текущей коллекции работников.
func (s *Store) Workers() []models.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Worker, len(s.workers))
	copy(out, s.workers)
	return out
}

// Transactions возвращает копию текущей коллекции рабочих сессий.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Snapshot возвращает согласованную пару копий обеих коллекций.
func (s *Store) Snapshot() ([]models.Worker, []models.Transaction) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	workers := make([]models.Worker, len(s.workers))
	copy(workers, s.workers)
	txs := make([]models.Transaction, len(s.txs))
	copy(txs, s.txs)
	return workers, txs
}

// AddWorker применяет ledger.AddWorker к текущему состоянию.
func (s *Store) AddWorker(draft models.WorkerDraft) (models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, worker, err := ledger.AddWorker(s.workers, draft)
	if err != nil {
		return models.Worker{}, err
	}
	s.workers = next
	return worker, nil
}

// UpdateWorker применяет ledger.UpdateWorker к текущему состоянию.
func (s *Store) UpdateWorker(id string, draft models.WorkerDraft) (models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, worker, err := ledger.UpdateWorker(s.workers, id, draft)
	if err != nil {
		return models.Worker{}, err
	}
	s.workers = next
	return worker, nil
}

// RemoveWorker применяет ledger.RemoveWorker к текущему состоянию.
func (s *Store) RemoveWorker(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := ledger.RemoveWorker(s.workers, id)
	if err != nil {
		return err
	}
	s.workers = next
	return nil
}

// RecordTransaction применяет ledger.RecordTransaction к текущему состоянию.
func (s *Store) RecordTransaction(draft models.TransactionDraft) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, tx, err := ledger.RecordTransaction(s.workers, s.txs, draft, s.now())
	if err != nil {
		return models.Transaction{}, err
	}
	s.txs = next
	return tx, nil
}

// MarkPaid применяет ledger.MarkPaid к текущему состоянию.
func (s *Store) MarkPaid(id string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, tx, err := ledger.MarkPaid(s.txs, id, s.now())
	if err != nil {
		return models.Transaction{}, err
	}
	s.txs = next
	return tx, nil
}

// RemoveTransaction применяет ledger.RemoveTransaction к текущему состоянию.
func (s *Store) RemoveTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := ledger.RemoveTransaction(s.txs, id)
	if err != nil {
		return err
	}
	s.txs = next
	return nil
}

// SeedDemo наполняет пустое хранилище демонстрационными данными: два
// работника и одна оплаченная сессия. Непустое хранилище не трогает.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.workers) > 0 || len(s.txs) > 0 {
		return
	}

	maria := models.Worker{
		ID:          "seed-maria",
		Name:        "Maria Rodriguez",
		Phone:       "555-0123",
		Email:       "maria@email.com",
		DefaultRate: 25,
		Status:      models.WorkerActive,
		Skills:      []string{"Cleaning", "Organization"},
	}
	james := models.Worker{
		ID:          "seed-james",
		Name:        "James Wilson",
		Phone:       "555-0124",
		Email:       "james@email.com",
		DefaultRate: 20,
		Status:      models.WorkerActive,
		Skills:      []string{"Delivery", "Maintenance"},
	}
	s.workers = []models.Worker{maria, james}

	createdAt := time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)
	paidAt := createdAt.Add(3 * time.Hour)
	s.txs = []models.Transaction{{
		ID:            "seed-tx-1",
		WorkerID:      maria.ID,
		WorkerName:    maria.Name,
		Service:       "Apartment Cleaning",
		Date:          "2025-08-10",
		StartTime:     "09:00",
		EndTime:       "12:00",
		Hours:         3,
		Rate:          25,
		Total:         75,
		Status:        models.StatusPaid,
		PaymentMethod: models.MethodCash,
		Notes:         "Deep clean of kitchen and bathrooms",
		CreatedAt:     createdAt,
		PaidAt:        &paidAt,
	}}
}
