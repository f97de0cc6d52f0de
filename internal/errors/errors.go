// errors стандартизирует ответы об ошибках HTTP-слоя cms-gateway.
// На вход он принимает ошибку (сентинелы клиентского пайплайна из
// internal/client), а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: классификация в internal/client/errors.go.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/agussaepos/saepos-cms/internal/client"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// ErrInvalidArgument — локальная ошибка разбора входных данных хендлера
// (битые query-параметры, невалидный JSON, пустой path-параметр).
var ErrInvalidArgument = stderrors.New("invalid argument")

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует входную ошибку (обычно сентинел клиентского
// пайплайна) в HTTP-статус и унифицированный ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - ErrSessionExpired и ErrUnauthenticated -> 401: фронт по этому
//     коду уводит пользователя на форму логина, редиректов шлюз не делает;
//   - прочие сентинелы маппятся на соответствующие 4xx/5xx;
//   - неизвестная ошибка - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// base — базовый маппинг сентинелов пайплайна -> HTTP/FE-код/сообщение:
//   - ErrInvalidArgument / client.ErrInvalidArgument -> 400
//   - ErrSessionExpired -> 401 session_expired (фронт чистит стейт и уводит на логин)
//   - ErrUnauthenticated -> 401
//   - ErrInvalidCredentials -> 401 invalid_credentials (форма логина)
//   - ErrNotFound -> 404
//   - ErrConflict -> 409
//   - context.Canceled -> 499 (клиент закрыл соединение)
//   - context.DeadlineExceeded -> 504 (таймаут запроса к backend)
//   - ErrUnavailable -> 503 (backend недоступен)
//   - прочее -> 500/internal
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case stderrors.Is(err, ErrInvalidArgument), stderrors.Is(err, client.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case stderrors.Is(err, client.ErrSessionExpired):
		return http.StatusUnauthorized, "session_expired", "session expired"
	case stderrors.Is(err, client.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "invalid credentials"
	case stderrors.Is(err, client.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case stderrors.Is(err, client.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case stderrors.Is(err, client.ErrConflict):
		return http.StatusConflict, "conflict", "already exists"
	case isCanceled(err):
		return StatusClientClosedRequest, "canceled", "canceled"
	case isDeadline(err):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case stderrors.Is(err, client.ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable", "service unavailable"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

func isCanceled(err error) bool { return stderrors.Is(err, context.Canceled) }

func isDeadline(err error) bool { return stderrors.Is(err, context.DeadlineExceeded) }
