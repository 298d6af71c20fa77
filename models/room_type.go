package models

import "time"

type RoomType struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `json:"description"`
	NightlyPrice float64    `gorm:"not null" json:"nightlyPrice"`
	ValidDate    *time.Time `json:"validDate"` // thời điểm bảng giá có hiệu lực
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms        []Room     `json:"rooms,omitempty" gorm:"foreignKey:RoomTypeID"`
}
