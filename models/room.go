package models

import (
	"fmt"
	"time"

	"hotelhub/constants"
)

type Room struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	RoomNumber  string      `gorm:"unique;size:20;not null" json:"roomNumber"`
	RoomTypeID  uint        `gorm:"not null" json:"roomTypeId"`
	RoomType    RoomType    `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Status      int         `gorm:"default:1" json:"status"`
	StartDate   *time.Time  `json:"startDate"` // nil = không giới hạn
	EndDate     *time.Time  `json:"endDate"`
	Description string      `json:"description"`
	Version     uint        `gorm:"default:1" json:"version"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	Media       []RoomMedia `json:"media,omitempty" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusAvailable || r.Status > constants.RoomStatusMaintenance {
		return fmt.Errorf("invalid status: %d, must be between %d and %d",
			r.Status, constants.RoomStatusAvailable, constants.RoomStatusMaintenance)
	}
	return nil
}

// AvailableOn kiểm tra ngày date có nằm trong khung hiệu lực của phòng không,
// biên nil coi như không giới hạn
func (r *Room) AvailableOn(date time.Time) bool {
	if r.StartDate != nil && date.Before(*r.StartDate) {
		return false
	}
	if r.EndDate != nil && date.After(*r.EndDate) {
		return false
	}
	return true
}
