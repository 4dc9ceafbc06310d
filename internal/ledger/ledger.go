// Package ledger реализует операции мутации над коллекциями работников и
// рабочих сессий.
//
// Все операции чистые: входная коллекция никогда не изменяется, результатом
// всегда является новая коллекция (copy-on-write). Операция либо завершается
// успешно и возвращает новую корректную коллекцию, либо возвращает ошибку,
// оставляя исходную коллекцию как есть — частично применённых мутаций не
// бывает.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/paytracker/internal/models"
)

// DateLayout формат календарной даты рабочей сессии.
const DateLayout = "2006-01-02"

func validateWorkerDraft(draft models.WorkerDraft) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(draft.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Reason: "name is required"})
	}
	if strings.TrimSpace(draft.Phone) == "" {
		errs = append(errs, ValidationError{Field: "phone", Reason: "phone is required"})
	}
	if strings.TrimSpace(draft.Email) == "" {
		errs = append(errs, ValidationError{Field: "email", Reason: "email is required"})
	}
	if draft.DefaultRate <= 0 {
		errs = append(errs, ValidationError{Field: "default_rate", Reason: "rate must be greater than 0"})
	}
	return errs
}

// AddWorker проверяет черновик, назначает новый id, выставляет статус Active
// и добавляет работника в конец коллекции. Возвращает новую коллекцию и
// созданную запись.
func AddWorker(workers []models.Worker, draft models.WorkerDraft) ([]models.Worker, models.Worker, error) {
	if errs := validateWorkerDraft(draft); len(errs) > 0 {
		return nil, models.Worker{}, errs
	}

	worker := models.Worker{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Phone:       draft.Phone,
		Email:       draft.Email,
		DefaultRate: draft.DefaultRate,
		Status:      models.WorkerActive,
		Skills:      append([]string(nil), draft.Skills...),
	}

	out := make([]models.Worker, len(workers), len(workers)+1)
	copy(out, workers)
	return append(out, worker), worker, nil
}

// UpdateWorker заменяет запись с указанным id, сохраняя её позицию, id и
// статус. Черновик проходит ту же валидацию, что и при создании.
func UpdateWorker(workers []models.Worker, id string, draft models.WorkerDraft) ([]models.Worker, models.Worker, error) {
	if errs := validateWorkerDraft(draft); len(errs) > 0 {
		return nil, models.Worker{}, errs
	}

	out := make([]models.Worker, len(workers))
	copy(out, workers)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		updated := models.Worker{
			ID:          out[i].ID,
			Name:        draft.Name,
			Phone:       draft.Phone,
			Email:       draft.Email,
			DefaultRate: draft.DefaultRate,
			Status:      out[i].Status,
			Skills:      append([]string(nil), draft.Skills...),
		}
		out[i] = updated
		return out, updated, nil
	}
	return nil, models.Worker{}, ErrWorkerNotFound
}

// RemoveWorker удаляет запись с указанным id. Удаление жёсткое: ссылочная
// целостность с существующими сессиями не проверяется, записи сессий
// сохраняют снимок имени и висячий worker_id.
func RemoveWorker(workers []models.Worker, id string) ([]models.Worker, error) {
	out := make([]models.Worker, 0, len(workers))
	found := false
	for _, w := range workers {
		if w.ID == id {
			found = true
			continue
		}
		out = append(out, w)
	}
	if !found {
		return nil, ErrWorkerNotFound
	}
	return out, nil
}

func validateTransactionDraft(workers []models.Worker, draft models.TransactionDraft) (models.Worker, ValidationErrors) {
	var errs ValidationErrors
	var worker models.Worker

	if strings.TrimSpace(draft.WorkerID) == "" {
		errs = append(errs, ValidationError{Field: "worker_id", Reason: "worker is required"})
	} else {
		found := false
		for _, w := range workers {
			if w.ID == draft.WorkerID {
				worker = w
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, ValidationError{Field: "worker_id", Reason: "worker does not exist"})
		}
	}
	if strings.TrimSpace(draft.Service) == "" {
		errs = append(errs, ValidationError{Field: "service", Reason: "service is required"})
	}
	if strings.TrimSpace(draft.Date) == "" {
		errs = append(errs, ValidationError{Field: "date", Reason: "date is required"})
	} else if _, err := time.Parse(DateLayout, draft.Date); err != nil {
		errs = append(errs, ValidationError{Field: "date", Reason: "date must be in format " + DateLayout})
	}
	if draft.Hours <= 0 {
		errs = append(errs, ValidationError{Field: "hours", Reason: "hours must be greater than 0"})
	}
	if draft.Rate <= 0 {
		errs = append(errs, ValidationError{Field: "rate", Reason: "rate must be greater than 0"})
	}
	if draft.PaymentMethod != "" && !draft.PaymentMethod.Valid() {
		errs = append(errs, ValidationError{Field: "payment_method", Reason: "unknown payment method"})
	}
	return worker, errs
}

// RecordTransaction проверяет черновик рабочей сессии, вычисляет
// Total = Hours * Rate, снимает снимок имени работника, выставляет статус
// Pending и добавляет запись в конец коллекции. Способ оплаты по умолчанию —
// Cash. Total вычисляется ровно один раз и далее не пересчитывается.
func RecordTransaction(workers []models.Worker, txs []models.Transaction, draft models.TransactionDraft, now time.Time) ([]models.Transaction, models.Transaction, error) {
	worker, errs := validateTransactionDraft(workers, draft)
	if len(errs) > 0 {
		return nil, models.Transaction{}, errs
	}

	method := draft.PaymentMethod
	if method == "" {
		method = models.MethodCash
	}

	tx := models.Transaction{
		ID:            uuid.NewString(),
		WorkerID:      worker.ID,
		WorkerName:    worker.Name,
		Service:       draft.Service,
		Date:          draft.Date,
		StartTime:     draft.StartTime,
		EndTime:       draft.EndTime,
		Hours:         draft.Hours,
		Rate:          draft.Rate,
		Total:         draft.Hours * draft.Rate,
		Status:        models.StatusPending,
		PaymentMethod: method,
		Notes:         draft.Notes,
		CreatedAt:     now,
	}

	out := make([]models.Transaction, len(txs), len(txs)+1)
	copy(out, txs)
	return append(out, tx), tx, nil
}

// MarkPaid переводит сессию из Pending в Paid и фиксирует момент оплаты.
// Переход одностороний и выполняется ровно один раз: повторная оплата
// возвращает ErrAlreadyPaid, коллекция при этом не меняется.
func MarkPaid(txs []models.Transaction, id string, now time.Time) ([]models.Transaction, models.Transaction, error) {
	out := make([]models.Transaction, len(txs))
	copy(out, txs)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if out[i].Status == models.StatusPaid {
			return nil, models.Transaction{}, ErrAlreadyPaid
		}
		paidAt := now
		out[i].Status = models.StatusPaid
		out[i].PaidAt = &paidAt
		return out, out[i], nil
	}
	return nil, models.Transaction{}, ErrTransactionNotFound
}

// RemoveTransaction удаляет запись с указанным id.
func RemoveTransaction(txs []models.Transaction, id string) ([]models.Transaction, error) {
	out := make([]models.Transaction, 0, len(txs))
	found := false
	for _, tx := range txs {
		if tx.ID == id {
			found = true
			continue
		}
		out = append(out, tx)
	}
	if !found {
		return nil, ErrTransactionNotFound
	}
	return out, nil
}
