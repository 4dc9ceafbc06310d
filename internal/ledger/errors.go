package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// Сигнальные ошибки операций мутации. Коллекции при любой из них
// остаются неизменными.
var (
	// ErrWorkerNotFound работник с указанным id отсутствует в коллекции.
	ErrWorkerNotFound = errors.New("worker not found")
	// ErrTransactionNotFound рабочая сессия с указанным id отсутствует.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAlreadyPaid попытка повторной оплаты уже оплаченной сессии.
	ErrAlreadyPaid = errors.New("transaction is already paid")
)

// ValidationError описывает одно нарушение в черновике: поле и причину.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// ValidationErrors накапливает все нарушения черновика, чтобы вызывающая
// сторона могла подсветить каждое проблемное поле, а не только первое.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, ", ")
}
