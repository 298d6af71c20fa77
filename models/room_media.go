package models

import "time"

type RoomMedia struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index;not null" json:"roomId"`
	URL       string    `gorm:"not null" json:"url"`
	MediaType int       `gorm:"default:0" json:"mediaType"` // 0: ảnh, 1: video
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
