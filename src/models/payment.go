package models

import (
	"crs/src/types"
	"time"
)

type Payment struct {
	ID            uint                `gorm:"primarykey" json:"id"`
	UserID        uint                `json:"user_id"`
	ReservationID uint                `json:"reservation_id"`
	Amount        float64             `json:"amount"`
	PaymentDate   time.Time           `gorm:"autoCreateTime" json:"payment_date"`
	PaymentMethod types.PaymentMethod `gorm:"size:50" json:"payment_method"`
	Status        types.PaymentStatus `gorm:"size:20;default:'pending'" json:"status"`
	// TransactionID holds the gateway charge id once a card payment
	// succeeds.
	TransactionID *string `json:"transaction_id,omitempty"`

	User *User `json:"-"`

	types.Timestamps
}
