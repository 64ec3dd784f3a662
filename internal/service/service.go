// Package service реализует бизнес-логику сервиса fixture-service.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/mmeshcher/fixture-service/internal/model"
)

// ErrMissingField возвращается, если у позиции заказа не заполнены цена или количество.
var (
	ErrMissingField = errors.New("line item missing required field")
	// ErrInvalidURL возвращается при попытке загрузить данные по некорректному URL.
	ErrInvalidURL = errors.New("invalid url")
)

// Fetcher описывает контракт загрузки внешних данных, используемый сервисом.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Service содержит бизнес-логику сервиса fixture-service.
type Service struct {
	fetcher  Fetcher
	validate *validator.Validate
}

// NewService создаёт новый сервис с указанным клиентом загрузки данных.
func NewService(fetcher Fetcher) *Service {
	return &Service{
		fetcher:  fetcher,
		validate: validator.New(),
	}
}

// ProcessUser нормализует запись пользователя: обрезает пробелы вокруг имени
// и помечает запись валидной при строго положительном идентификаторе.
// NameLength считается по исходному имени до обрезки пробелов.
func (s *Service) ProcessUser(id int64, name string) model.ProcessedUser {
	return model.ProcessedUser{
		ID:         id,
		Name:       strings.TrimSpace(name),
		NameLength: utf8.RuneCountInString(name),
		Valid:      id > 0,
	}
}

// CalculateTotal суммирует позиции заказа в порядке их следования.
// Пустой список даёт нулевую сумму.
func (s *Service) CalculateTotal(items []model.LineItem) (float64, error) {
	total := 0.0

	for i, item := range items {
		if err := s.validate.Struct(item); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return 0, fmt.Errorf("%w: item %d: %s", ErrMissingField, i, strings.ToLower(verrs[0].Field()))
			}
			return 0, fmt.Errorf("validate item %d: %w", i, err)
		}

		total += *item.Price * *item.Quantity
	}

	return total, nil
}

// FetchData загружает данные по указанному URL и возвращает их как текст.
// Результат считается недоверенными данными из внешнего источника.
func (s *Service) FetchData(ctx context.Context, rawURL string) (string, error) {
	if s.fetcher == nil {
		return "", errors.New("fetcher not configured")
	}

	if err := s.validate.Var(rawURL, "required,url"); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	data, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("fetch data: %w", err)
	}

	return data, nil
}
