// Package model содержит доменные сущности сервиса fixture-service.
package model

// ProcessedUser представляет результат нормализации записи пользователя.
type ProcessedUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// NameLength считается по исходному имени до обрезки пробелов.
	NameLength int  `json:"name_length"`
	Valid      bool `json:"valid"`
}

// LineItem описывает одну позицию заказа с ценой и количеством.
// Поля объявлены указателями, чтобы отличать отсутствующее значение от нулевого.
type LineItem struct {
	Price    *float64 `json:"price" validate:"required"`
	Quantity *float64 `json:"quantity" validate:"required"`
}
