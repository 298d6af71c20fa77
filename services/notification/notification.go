package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService phát thông báo realtime tới mọi client WebSocket đang kết nối
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder dựng payload JSON cho một sự kiện booking
type BookingMessageBuilder struct {
	bookingID uint
	roomID    uint
	event     string
}

func NewBookingMessageBuilder(bookingID uint, roomID uint, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		bookingID: bookingID,
		roomID:    roomID,
		event:     event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	payload := map[string]interface{}{
		"type":      "booking",
		"event":     b.event,
		"bookingId": b.bookingID,
		"roomId":    b.roomID,
		"time":      time.Now().Format(time.RFC3339),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(`{"type":"booking","event":"%s","bookingId":%d}`, b.event, b.bookingID)
	}
	return string(data)
}
