// client — аутентифицированный пайплайн запросов к POS backend API.
//
// Все бизнес-вызовы гейтвея проходят через единую точку call():
// она подставляет bearer-токен из session.Store, прокидывает X-Request-Id,
// а на 401 выполняет refresh-обмен (single-flight на процесс) и повторяет
// исходный запрос ровно один раз. Повторный 401 после успешного refresh —
// терминальный отказ, без новых попыток.
//
// Refresh и логин ходят по «голому» транспорту: без access-токена и без
// 401-обработчика, иначе сбой refresh зацикливал бы пайплайн.
package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/agussaepos/saepos-cms/internal/session"
)

// apiPrefix — общий префикс CMS-эндпойнтов backend API.
const apiPrefix = "/api/v1/cms"

// ctxKey — ключи контекста клиентского слоя.
type ctxKey string

// CtxRequestID — ключ, по которому HTTP-middleware кладёт X-Request-Id
// входящего запроса; клиент прокидывает его в backend.
const CtxRequestID ctxKey = "request_id"

// Client — типизированный клиент backend API. Безопасен для конкурентного
// использования: всё изменяемое состояние живёт в session.Store,
// single-flight refresh — в sf.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   *session.Store
	sf      singleflight.Group
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет транспорт (в тестах и для кастомных TLS-настроек).
// Таймаут переданного клиента сохраняется как есть.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpc = h
	}
}

// New создаёт клиент backend API.
// baseURL — адрес backend'а без суффикса /api/v1/cms.
// timeout — явная граница одной попытки запроса.
func New(baseURL string, store *session.Store, timeout time.Duration, opts ...Option) (*Client, error) {
	const op = "client.New"

	if baseURL == "" {
		return nil, fmt.Errorf("%s: empty base url", op)
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: invalid base url %q", op, baseURL)
	}

	if store == nil {
		return nil, fmt.Errorf("%s: nil session store", op)
	}

	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		store:   store,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// endpoint собирает абсолютный URL эндпойнта с query-строкой.
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}
