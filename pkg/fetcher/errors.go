package fetcher

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HTTPError - ответ API со статусом вне диапазона 2xx
type HTTPError struct {
	StatusCode int
	Body       string
	// Detail - поле "detail" из JSON-тела, если оно там было
	Detail string
}

func newHTTPError(statusCode int, body []byte) *HTTPError {
	e := &HTTPError{
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Detail = payload.Detail
	}
	return e
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// DecodeError - тело ответа не разобралось как JSON или не прошло проверку схемы
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Detail возвращает сообщение сервера из ошибки API, если оно есть
func Detail(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Detail
	}
	return ""
}

// StatusCode возвращает HTTP-статус ошибки API или 0
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
