package models

import "time"

// PointTransaction là sổ điểm thưởng của user, mỗi dòng một lần cộng/trừ
type PointTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	BookingID *uint     `gorm:"index" json:"bookingId,omitempty"`
	Points    int       `gorm:"not null" json:"points"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
