package models

import (
	"crs/src/types"
)

// Seat labels are unique within a showtime, enforced at the schema
// level so concurrent batch creations cannot slip in duplicates.
type Seat struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	SeatNumber string `gorm:"size:10;uniqueIndex:idx_seat_per_showtime" json:"seat_number"`
	Row        string `gorm:"size:1" json:"row"`
	Column     int    `json:"column"`
	IsReserved bool   `gorm:"default:false" json:"is_reserved"`
	ShowtimeID uint   `gorm:"uniqueIndex:idx_seat_per_showtime" json:"showtime_id"`

	Showtime *Showtime `json:"-"`

	types.Timestamps
}
