package models

import (
	"time"
)

type Booking struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"index;not null" json:"userId"`
	User         User       `json:"user" gorm:"foreignKey:UserID"`
	RoomID       uint       `gorm:"index;not null" json:"roomId"`
	Room         Room       `json:"room" gorm:"foreignKey:RoomID"`
	CheckInDate  *time.Time `json:"checkInDate"`
	CheckOutDate *time.Time `json:"checkOutDate"`
	Status       int        `gorm:"default:0" json:"status"`
	TotalAmount  float64    `json:"totalAmount"`
	StaffID      *uint      `json:"staffId,omitempty"` // admin thực hiện check-in/check-out
	Version      uint       `gorm:"default:1" json:"version"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Nights tính số đêm của booking, tối thiểu 1
func (b *Booking) Nights() int {
	if b.CheckInDate == nil || b.CheckOutDate == nil {
		return 1
	}
	nights := int(b.CheckOutDate.Sub(*b.CheckInDate).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
