package client

// Тесты аутентифицированного пайплайна против фейкового backend'а (httptest):
//   - логин (успех/отказ) и его изоляция от refresh-протокола;
//   - 401 -> refresh -> однократный ретрай с новым токеном;
//   - терминальность повторного 401 после успешного refresh;
//   - провал refresh -> принудительный logout, ровно один обмен;
//   - single-flight: конкурентные 401 сходятся в один обмен;
//   - прекондиция refresh без сетевого вызова;
//   - best-effort logout и безусловная локальная очистка;
//   - классификация не-401 ошибок и прокидывание query-параметров.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agussaepos/saepos-cms/internal/models"
	"github.com/agussaepos/saepos-cms/internal/session"
)

// memStorage — детерминированный in-memory бэкенд session.Storage для тестов.
type memStorage struct {
	mu  sync.Mutex
	rec *session.Record
}

func (m *memStorage) Load(_ context.Context) (*session.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return nil, session.ErrNotFound
	}
	cp := *m.rec
	return &cp, nil
}

func (m *memStorage) Save(_ context.Context, rec *session.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	m.rec = &cp
	return nil
}

func (m *memStorage) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = nil
	return nil
}

func (m *memStorage) Close() error { return nil }

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	s := session.New(&memStorage{}, time.Hour)
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func newTestClient(t *testing.T, baseURL string, store *session.Store) *Client {
	t.Helper()
	c, err := New(baseURL, store, 5*time.Second)
	require.NoError(t, err)
	return c
}

func seedSession(t *testing.T, store *session.Store, access, refresh string) {
	t.Helper()
	u := &models.User{ID: 7, Email: "a@b.com", Name: "Ops", Role: "admin"}
	require.NoError(t, store.SetAuth(context.Background(), u, access, refresh))
}

func writeData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}

func TestLogin_OK_PopulatesSession(t *testing.T) {
	t.Parallel()

	var sawAuthHeader atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/cms/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		if r.Header.Get("Authorization") != "" {
			sawAuthHeader.Store(true)
		}

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "a@b.com", in["email"])
		require.Equal(t, "x", in["password"])

		writeData(w, map[string]any{
			"user":         map[string]any{"id": 7, "email": "a@b.com", "name": "Ops", "role": "admin"},
			"token":        "access-1",
			"refreshToken": "refresh-1",
		})
	}))
	defer srv.Close()

	store := newTestStore(t)
	c := newTestClient(t, srv.URL, store)

	u, err := c.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)
	require.False(t, sawAuthHeader.Load(), "логин не должен подставлять bearer")

	sess := store.Session()
	require.True(t, sess.Authenticated())
	require.Equal(t, "access-1", sess.AccessToken)
	require.Equal(t, "refresh-1", sess.RefreshToken)
}

// Отказ логина не трогает состояние сессии и не привлекает refresh.
func TestLogin_BadCredentials_SessionUntouched(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/cms/auth/refresh" {
			refreshCalls.Add(1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestStore(t)
	c := newTestClient(t, srv.URL, store)

	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.False(t, store.Session().Authenticated())
	require.Zero(t, refreshCalls.Load())
}

func TestDashboard_AttachesBearer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/cms/dashboard", r.URL.Path)
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		writeData(w, models.DashboardStats{TotalPartners: 3, TotalRevenue: 150.5})
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	stats, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalPartners)
	require.InEpsilon(t, 150.5, stats.TotalRevenue, 1e-9)
}

// Сценарий: 401 -> успешный refresh -> исходный запрос повторён ровно один раз,
// его результат возвращён вызывающему; итого один refresh-обмен.
func TestCall_401_RefreshAndRetryOnce(t *testing.T) {
	t.Parallel()

	var dashboardCalls, refreshCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/cms/auth/refresh":
			refreshCalls.Add(1)
			require.Empty(t, r.Header.Get("Authorization"), "refresh идёт без access-токена")

			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.InDelta(t, 7, in["userId"], 0)
			require.Equal(t, "refresh-1", in["refreshToken"])

			writeData(w, map[string]string{"accessToken": "access-2", "refreshToken": "refresh-2"})
		case "/api/v1/cms/dashboard":
			dashboardCalls.Add(1)
			if r.Header.Get("Authorization") != "Bearer access-2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			writeData(w, models.DashboardStats{TotalStores: 9})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	stats, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(9), stats.TotalStores)

	require.Equal(t, int64(2), dashboardCalls.Load(), "исходный + один ретрай")
	require.Equal(t, int64(1), refreshCalls.Load())

	// Сессия ротирована.
	sess := store.Session()
	require.Equal(t, "access-2", sess.AccessToken)
	require.Equal(t, "refresh-2", sess.RefreshToken)
}

// Повторный 401 после успешного refresh терминален: второго refresh нет.
func TestCall_Second401AfterRefresh_Terminal(t *testing.T) {
	t.Parallel()

	var dashboardCalls, refreshCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/cms/auth/refresh":
			refreshCalls.Add(1)
			writeData(w, map[string]string{"accessToken": "access-2", "refreshToken": "refresh-2"})
		case "/api/v1/cms/dashboard":
			dashboardCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	_, err := c.Dashboard(context.Background())
	require.ErrorIs(t, err, ErrUnauthenticated)

	require.Equal(t, int64(2), dashboardCalls.Load())
	require.Equal(t, int64(1), refreshCalls.Load())
}

// Сценарий: 401 -> refresh сам отвечает 401 -> сессия очищена, исходный
// запрос провален, ноль дополнительных обменов.
func TestCall_RefreshFails_ForcedLogout(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/cms/auth/refresh":
			refreshCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		case "/api/v1/cms/products":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	_, err := c.Products(context.Background(), models.ListParams{})
	require.ErrorIs(t, err, ErrSessionExpired)

	require.Equal(t, int64(1), refreshCalls.Load())
	require.False(t, store.Session().Authenticated(), "refresh-провал завершает сессию")
}

// Single-flight: конкурентные запросы, получившие 401, сходятся в один
// refresh-обмен и все завершаются успехом после ретрая.
func TestCall_ConcurrentRefresh_SingleFlight(t *testing.T) {
	t.Parallel()

	const workers = 8

	var (
		refreshCalls  atomic.Int64
		firstAttempts atomic.Int64
		barrier       = make(chan struct{})
		barrierOnce   sync.Once
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/cms/auth/refresh":
			refreshCalls.Add(1)
			writeData(w, map[string]string{"accessToken": "access-2", "refreshToken": "refresh-2"})
		case "/api/v1/cms/dashboard":
			if r.Header.Get("Authorization") == "Bearer access-1" {
				// Первая волна: держим всех до прихода последнего,
				// чтобы все увидели 401 до завершения refresh.
				if firstAttempts.Add(1) == workers {
					barrierOnce.Do(func() { close(barrier) })
				}
				<-barrier
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			writeData(w, models.DashboardStats{TotalStores: 1})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Dashboard(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}
	require.Equal(t, int64(1), refreshCalls.Load(), "ровно один обмен на волну 401")
}

// Прекондиция refresh: без refresh-токена обмен не стартует и сетевого
// вызова нет — сессия сразу завершается.
func TestCall_RefreshPrecondition_NoNetworkCall(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/cms/auth/refresh" {
			refreshCalls.Add(1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newTestStore(t)
	// Сессия без refresh-токена (SetAuth с пустым refresh при отсутствии старого).
	seedSession(t, store, "access-1", "")
	c := newTestClient(t, srv.URL, store)

	_, err := c.Dashboard(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)
	require.Zero(t, refreshCalls.Load())
	require.False(t, store.Session().Authenticated())
}

// Logout: best-effort серверная инвалидация + безусловная локальная очистка,
// даже если backend ответил ошибкой.
func TestLogout_ClearsLocally_DespiteUpstreamError(t *testing.T) {
	t.Parallel()

	var logoutCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/cms/auth/logout", r.URL.Path)
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		logoutCalls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	require.NoError(t, c.Logout(context.Background()))
	require.Equal(t, int64(1), logoutCalls.Load())
	require.False(t, store.Session().Authenticated())
}

// Не-401 ошибки возвращаются как есть, без участия refresh-протокола.
func TestCall_NotFound_Classified(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/cms/auth/refresh" {
			refreshCalls.Add(1)
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"partner not found"}`))
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	_, err := c.Partner(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, refreshCalls.Load())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "partner not found", apiErr.Message)
}

// Списочные параметры доезжают до backend'а, конверт {items, meta} декодируется.
func TestProducts_QueryParamsAndEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/cms/products", r.URL.Path)

		q := r.URL.Query()
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "25", q.Get("limit"))
		require.Equal(t, "name", q.Get("sortBy"))
		require.Equal(t, "desc", q.Get("sortOrder"))
		require.Equal(t, "latte", q.Get("search"))
		require.Equal(t, "5", q.Get("storeId"))

		writeData(w, map[string]any{
			"items": []models.Product{{ID: 1, Name: "Latte", Price: 3.5, StoreID: 5}},
			"meta":  models.ListMeta{Total: 41, Page: 2, Limit: 25, TotalPages: 2, HasMore: false},
		})
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	page, err := c.Products(context.Background(), models.ListParams{
		Page:      2,
		Limit:     25,
		SortBy:    "name",
		SortOrder: models.SortDesc,
		Search:    "latte",
		StoreID:   5,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Latte", page.Items[0].Name)
	require.Equal(t, int64(41), page.Meta.Total)
}

// CreatePartner: тело доезжает до backend'а, ответ декодируется из конверта.
func TestCreatePartner_OK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/cms/users/owners", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var in models.CreatePartnerInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "p@example.com", in.Email)

		writeData(w, models.Partner{ID: 11, Email: in.Email, Name: in.Name})
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	p, err := c.CreatePartner(context.Background(), models.CreatePartnerInput{
		Email:    "p@example.com",
		Name:     "Partner",
		Password: "Secret1!",
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), p.ID)
}

// Транспортный сбой (backend погашен) — ErrUnavailable.
func TestCall_TransportFailure_Unavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	srv.Close() // сразу гасим

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	_, err := c.Dashboard(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

// X-Request-Id из контекста прокидывается в backend как есть.
func TestCall_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "rid-123", r.Header.Get("X-Request-Id"))
		writeData(w, models.DashboardStats{})
	}))
	defer srv.Close()

	store := newTestStore(t)
	seedSession(t, store, "access-1", "refresh-1")
	c := newTestClient(t, srv.URL, store)

	ctx := context.WithValue(context.Background(), CtxRequestID, "rid-123")
	_, err := c.Dashboard(ctx)
	require.NoError(t, err)
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := New("", store, time.Second)
	require.Error(t, err)

	_, err = New("not-a-url", store, time.Second)
	require.Error(t, err)

	_, err = New(fmt.Sprintf("http://localhost:%d", 3001), nil, time.Second)
	require.Error(t, err)
}
