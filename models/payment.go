package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Payment là sổ ghi thanh toán append-only, không sửa sau khi tạo
type Payment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PaymentCode string     `gorm:"unique;size:20" json:"paymentCode"`
	BookingID   uint       `gorm:"index;not null" json:"bookingId"`
	Booking     Booking    `json:"booking" gorm:"foreignKey:BookingID"`
	Amount      float64    `gorm:"not null" json:"amount"`
	PaymentType int        `json:"paymentType"` // 0: tiền mặt, 1: ck ngân hàng, 2: momo
	Status      int        `json:"status"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (payment *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if payment.PaymentCode == "" {
		payment.PaymentCode = fmt.Sprintf("PAY%d", time.Now().UnixNano())
	}

	var count int64
	if err := tx.Model(&Payment{}).Where("payment_code = ?", payment.PaymentCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("PaymentCode đã tồn tại, hãy thử lại")
	}
	return nil
}
