package models

import (
	"crs/src/types"
)

type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"size:512;uniqueIndex" json:"username,omitempty"`
	Email        string     `gorm:"size:512;uniqueIndex" json:"email,omitempty"`
	PasswordHash string     `gorm:"size:256" json:"-"`
	Role         types.Role `gorm:"size:50;default:'user'" json:"role,omitempty"`

	Reservations []Reservation `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reservations,omitempty"`
	Payments     []Payment     `gorm:"foreignKey:UserID" json:"payments,omitempty"`

	types.Timestamps
}
