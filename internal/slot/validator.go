// Package slot валидирует кандидатское время начала слота.
// Чистая проверка формата и времени, без обращения к хранилищу:
// выполняется до открытия любой транзакции.
package slot

import (
	"time"
)

// Форматы с offset помимо RFC 3339: исходный парсер принимает и пробел
// в качестве разделителя даты и времени
var offsetLayouts = []string{
	"2006-01-02 15:04:05Z07:00",
}

// Форматы без offset: такие строки парсятся, но отклоняются с ErrMissingTimezone
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Validator проверяет кандидатское время начала бронирования
type Validator struct {
	timeProvider TimeProvider
}

// NewValidator создает новый валидатор слотов
func NewValidator() *Validator {
	return &Validator{timeProvider: &RealTimeProvider{}}
}

// NewValidatorWithTimeProvider создает валидатор с заданным источником времени
func NewValidatorWithTimeProvider(tp TimeProvider) *Validator {
	return &Validator{timeProvider: tp}
}

// Validate парсит ISO 8601 строку с обязательным offset и проверяет,
// что время строго в будущем. Сравнение "в будущем" выполняется
// относительно текущего момента в offset'е самого кандидата.
func (v *Validator) Validate(raw string) (time.Time, error) {
	start, err := parse(raw)
	if err != nil {
		return time.Time{}, err
	}

	now := v.timeProvider.Now().In(start.Location())
	if !start.After(now) {
		return time.Time{}, ErrPastSlot
	}

	return start, nil
}

func parse(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	// Строка без offset - отдельная причина отказа
	for _, layout := range naiveLayouts {
		if _, err := time.Parse(layout, raw); err == nil {
			return time.Time{}, ErrMissingTimezone
		}
	}

	return time.Time{}, ErrInvalidFormat
}
