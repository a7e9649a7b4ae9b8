package models

import (
	"crs/src/types"
)

// Admin is a legacy identity record that predates the User.Role
// mechanism. It is migrated for schema parity but no endpoint reads or
// writes it; role checks go through User.Role exclusively.
type Admin struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Username     string `gorm:"size:80;uniqueIndex" json:"username"`
	Email        string `gorm:"size:120;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:128" json:"-"`

	References []AdminReference `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"references,omitempty"`
	Showtimes  []Showtime       `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"showtimes,omitempty"`

	types.Timestamps
}

type AdminReference struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	AdminID       uint   `json:"admin_id"`
	ReferenceText string `json:"reference_text"`

	types.Timestamps
}
