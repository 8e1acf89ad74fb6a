package websocket

import (
	"encoding/json"
	"time"

	"github.com/dom/storefront-api/internal/domain"
)

type MessageType string

const (
	MessageTypeOrderPlaced MessageType = "order_placed"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// OrderPlacedPayload summarizes an order for the admin feed.
type OrderPlacedPayload struct {
	Order *domain.Order `json:"order"`
	Total string        `json:"total"`
}
