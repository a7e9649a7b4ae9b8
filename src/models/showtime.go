package models

import (
	"crs/src/types"
	"time"
)

type Showtime struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	MovieID   uint      `json:"movie_id"`
	StartTime time.Time `json:"start_time"`
	// Duration is in minutes.
	Duration uint  `json:"duration"`
	AdminID  *uint `json:"admin_id,omitempty"`

	Movie        *Movie        `json:"movie,omitempty"`
	Seats        []Seat        `gorm:"foreignKey:ShowtimeID;constraint:OnDelete:CASCADE" json:"seats,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:ShowtimeID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`

	types.Timestamps
}
