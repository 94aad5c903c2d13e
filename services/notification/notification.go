package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

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

// MessageBuilder dựng thông báo trạng thái đặt xe gửi qua websocket.
type MessageBuilder struct {
	reservationID uint
	vehicleID     uint
	status        string
}

func NewMessageBuilder(reservationID, vehicleID uint, status string) *MessageBuilder {
	return &MessageBuilder{
		reservationID: reservationID,
		vehicleID:     vehicleID,
		status:        status,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Đặt xe %d (xe %d) chuyển sang trạng thái %s.", b.reservationID, b.vehicleID, b.status)
}
