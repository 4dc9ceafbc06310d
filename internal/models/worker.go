// Package models содержит доменные структуры учёта работников и рабочих сессий,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// WorkerStatus статус работника в команде.
type WorkerStatus string

// Возможные статусы работника.
const (
	WorkerActive   WorkerStatus = "Active"
	WorkerInactive WorkerStatus = "Inactive"
)

// Worker представляет работника команды.
// Поле DefaultRate — ставка по умолчанию (валюта/час), подставляется
// при создании новой рабочей сессии.
type Worker struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	DefaultRate float64      `json:"default_rate"`
	Status      WorkerStatus `json:"status"`
	Skills      []string     `json:"skills,omitempty"`
}

// DummyWorker используется для приёма данных работника из JSON-запроса
// до их валидации и преобразования в WorkerDraft.
type DummyWorker struct {
	Name        string   `json:"name" validate:"required"`
	Phone       string   `json:"phone" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	DefaultRate float64  `json:"default_rate" validate:"required,gt=0"`
	Skills      []string `json:"skills,omitempty" validate:"omitempty"`
}

// WorkerDraft черновик работника без вычисляемых полей.
// Используется операциями мутации как входное значение.
type WorkerDraft struct {
	Name        string
	Phone       string
	Email       string
	DefaultRate float64
	Skills      []string
}
