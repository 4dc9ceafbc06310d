package models

// ServiceTemplate справочная запись об услуге: ставка по умолчанию и
// ориентировочная длительность. Используется только для подстановки значений
// в новую рабочую сессию и в разрезе отчёта по услугам; никогда не мутируется.
type ServiceTemplate struct {
	Name           string  `json:"name" yaml:"name"`
	DefaultRate    float64 `json:"default_rate" yaml:"default_rate"`
	EstimatedHours float64 `json:"estimated_hours" yaml:"estimated_hours"`
}
