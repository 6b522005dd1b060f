// Package fetcher - тонкий клиент удаленного REST API: GET/POST с токеном,
// разбор JSON с проверкой схемы и типизированные ошибки.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Client ходит в API по базовому адресу. Повторов, таймаутов и кеша нет:
// каждый вызов - новый запрос, время жизни задает контекст вызывающего.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
	validate   *validator.Validate
	metrics    *metrics
}

type Option func(*Client)

// WithHTTPClient подменяет http.Client (тесты, прокси)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
		validate:   validator.New(),
		metrics:    metricsSingleton(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve превращает относительный путь в полный URL. Абсолютные ссылки
// (например, next/previous из конверта пагинации) возвращаются без изменений.
func (c *Client) Resolve(url string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return c.baseURL + "/" + strings.TrimPrefix(url, "/")
}

// Get выполняет GET и разбирает ответ в T. На 204 возвращает nil без ошибки.
func Get[T any](ctx context.Context, c *Client, url, token string) (*T, error) {
	return do[T](ctx, c, http.MethodGet, url, token, nil)
}

// Post выполняет POST с JSON-телом и разбирает ответ в T.
func Post[T any](ctx context.Context, c *Client, url, token string, body any) (*T, error) {
	return do[T](ctx, c, http.MethodPost, url, token, body)
}

func do[T any](ctx context.Context, c *Client, method, url, token string, body any) (*T, error) {
	fullURL := c.Resolve(url)
	log := c.logger.WithFields(logrus.Fields{
		"component": "fetcher",
		"method":    method,
		"url":       fullURL,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(method, "error", time.Since(start))
		log.WithError(err).Error("Network error while calling API")
		// Сетевую ошибку отдаем как есть
		return nil, err
	}
	defer resp.Body.Close()
	c.metrics.observe(method, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		httpErr := newHTTPError(resp.StatusCode, raw)
		log.WithField("status", resp.StatusCode).WithField("body", httpErr.Body).Warn("API returned error status")
		return nil, httpErr
	}

	if resp.StatusCode == http.StatusNoContent {
		log.Debug("API returned no content")
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("Failed to read API response")
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &DecodeError{URL: fullURL, Err: errors.New("empty response body")}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.WithError(err).Error("Failed to parse API response")
		return nil, &DecodeError{URL: fullURL, Err: err}
	}
	if err := c.check(&out); err != nil {
		log.WithError(err).Error("API response failed schema validation")
		return nil, &DecodeError{URL: fullURL, Err: err}
	}

	log.WithField("status", resp.StatusCode).Debug("API call completed")
	return &out, nil
}

// check прогоняет validate-теги, если T - структура
func (c *Client) check(v any) error {
	if reflect.Indirect(reflect.ValueOf(v)).Kind() != reflect.Struct {
		return nil
	}
	return c.validate.Struct(v)
}
