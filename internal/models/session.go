package models

import "time"

// Session — текущее состояние staff-сессии процесса.
//
// Инвариант: AccessToken непустой тогда и только тогда, когда User != nil —
// сессия либо полностью аутентифицирована, либо полностью отсутствует,
// промежуточных состояний не бывает (за это отвечает session.Store).
type Session struct {
	User         *User
	AccessToken  string
	RefreshToken string
	// AccessExpiresAt — справочное поле для логов/метрик (exp из JWT),
	// пайплайн на него не опирается и реагирует только на фактический 401.
	AccessExpiresAt time.Time
}

// Authenticated сообщает, держит ли сессия действующую аутентификацию.
func (s Session) Authenticated() bool {
	return s.User != nil && s.AccessToken != ""
}
