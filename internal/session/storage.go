package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrNotFound — персистентной записи нет (или она истекла и была вычищена).
	ErrNotFound = errors.New("session record not found")
)

// Record — персистентная credential-запись сессии: ровно три именованных
// значения (access-токен, refresh-токен, сериализованный пользователь) плюс
// штамп истечения. Это прямой аналог трёх cookie оригинального фронтенда.
//
// User хранится сырым JSON: парсит его Store при гидрации, и битое содержимое
// трактуется как «сессии нет», а не как ошибка.
type Record struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	User         json.RawMessage `json:"user"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

// Expired сообщает, истекла ли запись к моменту now.
func (r *Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}

// Storage — контракт долговременного хранилища credential-записи.
// Хранилище — единственный источник истины между рестартами процесса;
// in-memory сессия в Store — его кэш.
//
//go:generate mockgen -source=storage.go -destination=../../mocks/mock_storage.go -package=mocks
type Storage interface {
	// Load возвращает текущую запись или ErrNotFound.
	Load(ctx context.Context) (*Record, error)
	// Save атомарно замещает запись.
	Save(ctx context.Context, rec *Record) error
	// Clear удаляет запись; отсутствие записи ошибкой не считается.
	Clear(ctx context.Context) error
	// Close освобождает ресурсы бэкенда.
	Close() error
}
