// Package fetcher предоставляет клиент для загрузки данных по произвольному URL.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// ErrNotUTF8 возвращается, если тело ответа не является корректной UTF-8 строкой.
var ErrNotUTF8 = errors.New("response body is not valid UTF-8")

// Client инкапсулирует HTTP-взаимодействие с внешними источниками данных.
type Client struct {
	httpClient *http.Client
}

// NewClient создаёт HTTP-клиент со стандартными настройками: без таймаута,
// без ретраев, редиректы обрабатываются по умолчанию.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// Fetch выполняет один блокирующий GET-запрос, читает тело ответа целиком
// и возвращает его как UTF-8 текст.
//
// Возвращаемые данные приходят из внешнего, неподконтрольного источника:
// вызывающая сторона обязана обращаться с ними как с недоверенным вводом.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	if !utf8.Valid(body) {
		return "", ErrNotUTF8
	}

	return string(body), nil
}
