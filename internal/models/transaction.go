package models

import "time"

// TransactionStatus статус оплаты рабочей сессии.
type TransactionStatus string

// Жизненный цикл оплаты: Pending -> Paid, строго один раз.
const (
	StatusPending TransactionStatus = "Pending"
	StatusPaid    TransactionStatus = "Paid"
)

// PaymentMethod способ оплаты рабочей сессии.
type PaymentMethod string

// Фиксированный набор способов оплаты.
const (
	MethodCash   PaymentMethod = "Cash"
	MethodVenmo  PaymentMethod = "Venmo"
	MethodPayPal PaymentMethod = "PayPal"
	MethodZelle  PaymentMethod = "Zelle"
	MethodCheck  PaymentMethod = "Check"
)

// PaymentMethods перечисляет способы оплаты в порядке объявления.
// Порядок важен: отчёты по способам оплаты итерируются по этому срезу.
var PaymentMethods = []PaymentMethod{
	MethodCash,
	MethodVenmo,
	MethodPayPal,
	MethodZelle,
	MethodCheck,
}

// Valid сообщает, входит ли способ оплаты в фиксированный набор.
func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Transaction представляет одну рабочую сессию с рассчитанной оплатой.
//
// WorkerName — снимок имени работника на момент создания записи:
// переименование работника не меняет историю. Total считается один раз
// при создании (Hours * Rate) и далее не пересчитывается.
// Date хранится строкой в формате 2006-01-02, StartTime/EndTime — 15:04.
type Transaction struct {
	ID            string            `json:"id"`
	WorkerID      string            `json:"worker_id"`
	WorkerName    string            `json:"worker_name"`
	Service       string            `json:"service"`
	Date          string            `json:"date"`
	StartTime     string            `json:"start_time,omitempty"`
	EndTime       string            `json:"end_time,omitempty"`
	Hours         float64           `json:"hours"`
	Rate          float64           `json:"rate"`
	Total         float64           `json:"total"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
}

// DummyTransaction используется для приёма данных рабочей сессии из
// JSON-запроса до их валидации. Hours можно не передавать, если заданы
// StartTime и EndTime — часы будут вычислены из интервала.
type DummyTransaction struct {
	WorkerID      string  `json:"worker_id" validate:"required"`
	Service       string  `json:"service" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime       string  `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Hours         float64 `json:"hours,omitempty" validate:"omitempty,gt=0"`
	Rate          float64 `json:"rate" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method,omitempty" validate:"omitempty,oneof=Cash Venmo PayPal Zelle Check"`
	Notes         string  `json:"notes,omitempty"`
}

// TransactionDraft черновик рабочей сессии без вычисляемых полей
// (id, total, status, workerName, createdAt назначаются операцией мутации).
type TransactionDraft struct {
	WorkerID      string
	Service       string
	Date          string
	StartTime     string
	EndTime       string
	Hours         float64
	Rate          float64
	PaymentMethod PaymentMethod
	Notes         string
}
