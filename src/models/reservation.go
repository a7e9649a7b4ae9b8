package models

import (
	"crs/src/types"
	"time"
)

type Reservation struct {
	ID         uint                    `gorm:"primarykey" json:"id"`
	UserID     uint                    `json:"user_id"`
	ShowtimeID uint                    `json:"showtime_id"`
	Timestamp  time.Time               `gorm:"autoCreateTime" json:"timestamp"`
	Status     types.ReservationStatus `gorm:"size:20;default:'pending'" json:"status,omitempty"`

	User     *User     `json:"-"`
	Showtime *Showtime `json:"showtime,omitempty"`
	Payment  *Payment  `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
	Seats    []*Seat   `gorm:"many2many:reservation_seats;" json:"seats,omitempty"`

	types.Timestamps
}
