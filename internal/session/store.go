// session реализует credential store гейтвея: in-memory staff-сессию
// процесса поверх долговременного хранилища (файл или Redis).
//
// Основные аспекты:
//   - Все мутации атомарны относительно чтений: никакой компонент не увидит
//     «полусобранную» сессию (новый access-токен со старым пользователем).
//   - Сессия либо полностью аутентифицирована (user + access-токен), либо
//     полностью пуста; промежуточные состояния не представимы.
//   - Initialize выполняется ровно один раз за жизнь процесса; повторные
//     вызовы — no-op. Битая/истекшая персистентная запись трактуется как
//     «сессии нет»: запись вычищается, ошибкой это не является.
//   - Ошибка записи в хранилище не ломает мутацию: in-memory состояние
//     остаётся авторитетным (сессия переживает процесс, но не рестарт),
//     ошибка логируется и возвращается как справочная.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agussaepos/saepos-cms/internal/models"
	"github.com/agussaepos/saepos-cms/internal/pkg/log"
	"github.com/agussaepos/saepos-cms/pkg/redact"
)

var (
	// ErrIncompleteAuth — попытка SetAuth без пользователя или access-токена.
	// Нарушило бы инвариант «всё или ничего», поэтому мутация отклоняется.
	ErrIncompleteAuth = errors.New("incomplete auth state")
)

// Store — credential store процесса. Безопасен для конкурентного использования.
type Store struct {
	mu          sync.Mutex
	storage     Storage
	ttl         time.Duration
	sess        models.Session
	initialized bool
}

// New создаёт Store поверх хранилища. ttl ограничивает время жизни
// персистентной записи (по умолчанию конфиг даёт 168h — недельные cookie
// оригинального фронтенда).
func New(storage Storage, ttl time.Duration) *Store {
	return &Store{
		storage: storage,
		ttl:     ttl,
	}
}

// Initialize гидрирует сессию из хранилища. Идемпотентен: после первого
// успешного вызова повторные ничего не делают.
//
// Отсутствующая, истекшая или нечитаемая запись — это «сессии нет»:
// хранилище вычищается, сессия остаётся пустой, ошибка не возвращается.
// Ошибку отдаём только при инфраструктурном сбое чтения.
func (s *Store) Initialize(ctx context.Context) error {
	const op = "session.Store.Initialize"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	lg := log.From(ctx)

	rec, err := s.storage.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.initialized = true
			return nil
		}

		lg.Error("session_load_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if rec.Expired(time.Now().UTC()) || rec.AccessToken == "" || rec.RefreshToken == "" || len(rec.User) == 0 {
		s.discardLocked(ctx, op, "stale_or_partial")
		return nil
	}

	var user models.User
	if err := json.Unmarshal(rec.User, &user); err != nil || user.ID == 0 {
		// Битый сериализованный пользователь — чистим и стартуем без сессии.
		s.discardLocked(ctx, op, "corrupt_user")
		return nil
	}

	s.sess = models.Session{
		User:            &user,
		AccessToken:     rec.AccessToken,
		RefreshToken:    rec.RefreshToken,
		AccessExpiresAt: accessExpiry(rec.AccessToken),
	}
	s.initialized = true

	lg.Info("session_hydrated",
		slog.String("op", op),
		slog.String("email", redact.Email(user.Email)),
		slog.Int64("user_id", user.ID),
	)

	return nil
}

// SetAuth атомарно устанавливает аутентифицированную сессию и персистит её.
// Пустой refreshToken сохраняет существующий refresh-токен (вызов без ротации);
// при ротации вызывающий обязан передать новый.
//
// Ошибка записи в хранилище справочная: in-memory сессия уже обновлена
// (деградация до memory-only, теряется на рестарте).
func (s *Store) SetAuth(ctx context.Context, user *models.User, accessToken, refreshToken string) error {
	const op = "session.Store.SetAuth"

	if user == nil || accessToken == "" {
		return fmt.Errorf("%s: %w", op, ErrIncompleteAuth)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if refreshToken == "" {
		refreshToken = s.sess.RefreshToken
	}

	s.sess = models.Session{
		User:            user,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: accessExpiry(accessToken),
	}
	s.initialized = true

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%s: marshal user: %w", op, err)
	}

	rec := &Record{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         rawUser,
		ExpiresAt:    time.Now().UTC().Add(s.ttl),
	}

	if err := s.storage.Save(ctx, rec); err != nil {
		log.From(ctx).Error("session_persist_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(user.Email)),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Logout очищает in-memory сессию и персистентную запись.
// Initialized остаётся true. Ошибка очистки хранилища справочная.
func (s *Store) Logout(ctx context.Context) error {
	const op = "session.Store.Logout"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = models.Session{}
	s.initialized = true

	if err := s.storage.Clear(ctx); err != nil {
		log.From(ctx).Error("session_clear_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Session возвращает консистентный снимок сессии.
func (s *Store) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sess
}

// AccessToken возвращает текущий access-токен ("" — сессии нет).
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sess.AccessToken
}

// Initialized сообщает, завершена ли гидрация.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.initialized
}

// discardLocked вычищает хранилище и оставляет пустую инициализированную
// сессию. Вызывается под s.mu.
func (s *Store) discardLocked(ctx context.Context, op, reason string) {
	s.sess = models.Session{}
	s.initialized = true

	if err := s.storage.Clear(ctx); err != nil {
		log.From(ctx).Warn("session_discard_clear_failed",
			slog.String("op", op),
			slog.String("reason", reason),
			slog.String("err", err.Error()),
		)
		return
	}

	log.From(ctx).Info("session_discarded",
		slog.String("op", op),
		slog.String("reason", reason),
	)
}

// accessExpiry достаёт exp из JWT без проверки подписи — токен для гейтвея
// непрозрачный носитель, exp нужен только для логов/метрик. Непарсибельный
// токен даёт нулевое время.
func accessExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}

	return exp.Time.UTC()
}
