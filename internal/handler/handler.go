// Package handler содержит HTTP-обработчики API сервиса fixture-service.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/fixture-service/internal/model"
	"github.com/mmeshcher/fixture-service/internal/service"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	ProcessUser(id int64, name string) model.ProcessedUser
	CalculateTotal(items []model.LineItem) (float64, error)
	FetchData(ctx context.Context, rawURL string) (string, error)
}

// Handler реализует HTTP-обработчики API сервиса fixture-service.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

type processUserRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProcessUser нормализует запись пользователя и возвращает результат в JSON.
func (h *Handler) ProcessUser(w http.ResponseWriter, r *http.Request) {
	var req processUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result := h.service.ProcessUser(req.ID, req.Name)

	writeJSON(w, http.StatusOK, result)
}

type totalRequest struct {
	Items []model.LineItem `json:"items"`
}

type totalResponse struct {
	Total float64 `json:"total"`
}

// CalculateTotal считает суммарную стоимость позиций заказа.
func (h *Handler) CalculateTotal(w http.ResponseWriter, r *http.Request) {
	var req totalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	total, err := h.service.CalculateTotal(req.Items)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("calculate total error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, totalResponse{Total: total})
}

type fetchRequest struct {
	URL string `json:"url"`
}

// FetchData загружает данные по переданному URL и отдаёт их как обычный текст.
// Тело ответа — недоверенные внешние данные, поэтому отдаётся инертно:
// text/plain и nosniff.
func (h *Handler) FetchData(w http.ResponseWriter, r *http.Request) {
	var req fetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	data, err := h.service.FetchData(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("fetch data error", zap.Error(err), zap.String("url", req.URL))
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(data))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
