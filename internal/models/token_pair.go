package models

import "time"

// TokenPair — пара токенов, выдаваемая backend'ом при логине/refresh.
//
// Описание:
//   - AccessToken — короткоживущий bearer-токен для запросов к API;
//   - RefreshToken — долгоживущий секрет, предъявляемый только эндпойнту
//     /auth/refresh для выпуска новой пары;
//   - AccessExpiresAt — момент истечения access-токена (UTC), если его удалось
//     извлечь из JWT-клейма exp; для непрозрачных токенов — нулевое время.
//
// Гейтвей токены не выпускает и не проверяет подпись — он только их носитель.
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}
