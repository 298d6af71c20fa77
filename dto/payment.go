package dto

// ProcessPaymentRequest là DTO cho request thanh toán với số tiền tường minh
type ProcessPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	PaymentType int     `json:"paymentType"`
}

// RefundRequest là DTO cho request hoàn tiền, amount bỏ trống hoàn đúng
// số tiền đã trả
type RefundRequest struct {
	Amount float64 `json:"amount"`
}

// RecordPaymentRequest là DTO cho request ghi điều chỉnh sổ thanh toán
type RecordPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	PaymentType int     `json:"paymentType"`
	Status      int     `json:"status"`
}

// PaymentResponse là một dòng trong sổ thanh toán
type PaymentResponse struct {
	ID          uint    `json:"id"`
	PaymentCode string  `json:"paymentCode"`
	BookingID   uint    `json:"bookingId"`
	Amount      float64 `json:"amount"`
	PaymentType int     `json:"paymentType"`
	Status      int     `json:"status"`
	PaymentDate string  `json:"paymentDate,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}
