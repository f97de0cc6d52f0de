// cookiefile — файловый бэкенд credential-записи сессии.
//
// Серверный аналог cookie-хранилища браузерного фронтенда: одна запись
// в JSON-файле с правами 0600. Запись замещается атомарно (временный файл
// + rename), чтобы параллельный читатель не увидел усечённый JSON.
package cookiefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agussaepos/saepos-cms/internal/session"
)

// Storage — session.Storage поверх локального файла.
type Storage struct {
	path string
}

// New создаёт файловый бэкенд. Директория создаётся лениво при первом Save.
func New(path string) (*Storage, error) {
	const op = "cookiefile.New"

	if path == "" {
		return nil, fmt.Errorf("%s: empty path", op)
	}

	return &Storage{path: path}, nil
}

// Load читает запись из файла.
// Отсутствующий файл — session.ErrNotFound. Нечитаемый JSON трактуется как
// отсутствие записи: файл удаляется, возвращается session.ErrNotFound.
func (s *Storage) Load(_ context.Context) (*session.Record, error) {
	const op = "cookiefile.Load"

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, session.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rec session.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Побитый файл восстановлению не подлежит — убираем сразу.
		_ = os.Remove(s.path)
		return nil, fmt.Errorf("%s: %w", op, session.ErrNotFound)
	}

	return &rec, nil
}

// Save атомарно замещает файл записи.
func (s *Storage) Save(_ context.Context, rec *session.Record) error {
	const op = "cookiefile.Save"

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Clear удаляет файл записи; отсутствие файла — не ошибка.
func (s *Storage) Clear(_ context.Context) error {
	const op = "cookiefile.Clear"

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close — у файлового бэкенда ресурсов нет.
func (s *Storage) Close() error { return nil }
