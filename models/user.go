package models

import (
	"time"
)

type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Username         string     `gorm:"unique;size:50;not null" json:"username"`
	Email            string     `gorm:"unique;not null" json:"email"`
	Password         string     `json:"-"`
	FullName         string     `gorm:"default:New User" json:"fullName"`
	PhoneNumber      string     `gorm:"type:varchar(11)" json:"phoneNumber"`
	Role             int        `gorm:"default:0" json:"role"`
	Status           int        `gorm:"default:1" json:"status"`
	Points           int        `gorm:"default:0" json:"points"`
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	Bookings         []Booking  `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}
