package types

import (
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

type Role string

const (
	ROLE_USER  Role = "user"
	ROLE_ADMIN Role = "admin"
)

type ReservationStatus string

const (
	RESERVATION_PENDING               ReservationStatus = "pending"
	RESERVATION_CONFIRMED             ReservationStatus = "confirmed"
	RESERVATION_AWAITING_PAYMENT      ReservationStatus = "awaiting_payment"
	RESERVATION_AWAITING_VERIFICATION ReservationStatus = "awaiting_verification"
)

type PaymentStatus string

const (
	PAYMENT_PENDING    PaymentStatus = "pending"
	PAYMENT_PROCESSING PaymentStatus = "processing"
	PAYMENT_COMPLETED  PaymentStatus = "completed"
)

type PaymentMethod string

const (
	PAYMENT_METHOD_CREDIT_CARD PaymentMethod = "credit_card"
	PAYMENT_METHOD_PAYPAL      PaymentMethod = "paypal"
	PAYMENT_METHOD_CASH        PaymentMethod = "cash"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RegisterUserRequestBody struct {
	Username string `json:"username" binding:"required,max=80"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateMovieRequestBody struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=1000"`
	PosterURL   string `json:"poster_url" binding:"required"`
	Genre       string `json:"genre" binding:"required,max=50"`
	ReleaseDate string `json:"release_date" binding:"required,dateonly"`
}

type UpdateMovieRequestBody struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	PosterURL   *string `json:"poster_url,omitempty"`
	Genre       *string `json:"genre,omitempty" binding:"omitempty,max=50"`
	ReleaseDate *string `json:"release_date,omitempty" binding:"omitempty,dateonly"`
}

type CreateShowtimeRequestBody struct {
	MovieID   uint   `json:"movie_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required,datetimefmt"`
	Duration  uint   `json:"duration" binding:"required"`
}

type CreateSeatsRequestBody struct {
	ShowtimeID  uint     `json:"showtime_id" binding:"required"`
	SeatNumbers []string `json:"seat_numbers" binding:"required,min=1"`
}

type CreateReservationRequestBody struct {
	ShowtimeID uint `json:"showtime_id" binding:"required"`
}

type UpdateReservationRequestBody struct {
	ShowtimeID    uint   `json:"showtime_id" binding:"required"`
	SeatIDs       []uint `json:"seat_ids" binding:"required,min=1"`
	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentToken  string `json:"payment_token,omitempty"`
}

type SendEmailRequestBody struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}
