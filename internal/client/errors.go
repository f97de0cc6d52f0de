package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated — backend ответил 401 и восстановить аутентификацию
	// не удалось. HTTP-слой маппит в 401/unauthenticated.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrSessionExpired — refresh-обмен провалился, сессия принудительно
	// завершена. HTTP-слой маппит в 401/session_expired (фронт уводит на логин).
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidCredentials — логин отклонён backend'ом (неверная пара
	// email/пароль). HTTP-слой маппит в 401/invalid_credentials,
	// состояние сессии не затрагивается.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidArgument — backend отверг параметры запроса (400/422).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound — сущность не найдена (404).
	ErrNotFound = errors.New("not found")

	// ErrConflict — конфликт уникальности/состояния (409).
	ErrConflict = errors.New("conflict")

	// ErrUnavailable — backend недоступен или отвечает 5xx/таймаутом.
	ErrUnavailable = errors.New("upstream unavailable")
)

// APIError — классифицированный ответ backend API с кодом и безопасным
// сообщением. Через Unwrap сопоставляется с sentinel-ошибками выше,
// поэтому вызывающие используют errors.Is, а HTTP-слой — errors.As.
type APIError struct {
	Status  int    // HTTP-статус ответа backend'а
	Code    string // машиночитаемый код из тела ответа, если был
	Message string // человекочитаемое сообщение из тела ответа, если было

	sentinel error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("upstream %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.sentinel }

// newAPIError классифицирует HTTP-статус backend'а в sentinel-ошибку.
func newAPIError(status int, code, message string) *APIError {
	e := &APIError{Status: status, Code: code, Message: message}

	switch {
	case status == http.StatusUnauthorized:
		e.sentinel = ErrUnauthenticated
	case status == http.StatusNotFound:
		e.sentinel = ErrNotFound
	case status == http.StatusConflict:
		e.sentinel = ErrConflict
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		e.sentinel = ErrInvalidArgument
	case status >= 500:
		e.sentinel = ErrUnavailable
	default:
		e.sentinel = fmt.Errorf("unexpected upstream status %d", status)
	}

	return e
}
