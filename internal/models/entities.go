package models

import "time"

// entities.go — бизнес-сущности CMS, как их отдаёт backend API.
// Гейтвей их не интерпретирует, только прокидывает фронтенду.

// DashboardStats — агрегированная статистика главной страницы дашборда.
type DashboardStats struct {
	TotalPartners     int64   `json:"totalPartners"`
	TotalStores       int64   `json:"totalStores"`
	TotalProducts     int64   `json:"totalProducts"`
	TotalTransactions int64   `json:"totalTransactions"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// Partner — владелец точек продаж (owner в терминах backend'а).
type Partner struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	StoreCount int       `json:"storeCount,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreatePartnerInput — тело создания партнёра (POST /users/owners).
type CreatePartnerInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// UpdatePartnerInput — тело обновления партнёра (PUT /users/{id}).
// nil-поля не отправляются и не изменяются.
type UpdatePartnerInput struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Store — точка продаж.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product — товар в каталоге точки.
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"categoryId"`
	StoreID    int64   `json:"storeId"`
	Stock      int     `json:"stock"`
}

// Category — категория товаров.
type Category struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StoreID int64  `json:"storeId,omitempty"`
}

// Transaction — завершённая продажа.
type Transaction struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"storeId"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
