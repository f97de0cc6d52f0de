package models

// User — сотрудник платформы, аутентифицированный в CMS.
//
// Идентификаторы числовые — их выдаёт backend API, гейтвей их не порождает.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}
