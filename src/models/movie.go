package models

import (
	"crs/src/types"
	"time"
)

type Movie struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:200" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	PosterURL   string    `gorm:"size:500" json:"poster_url"`
	Genre       string    `gorm:"size:50" json:"genre"`
	ReleaseDate time.Time `gorm:"type:date" json:"release_date"`

	Showtimes []Showtime `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"showtimes,omitempty"`

	types.Timestamps
}
