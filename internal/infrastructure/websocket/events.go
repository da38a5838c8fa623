package websocket

import (
	"encoding/json"
	"time"
)

// Wire events for the support chat widget. send_message comes from the
// client; receive_message and message_sent go back out. subscribe_chat and
// unsubscribe_chat control conversation snapshot pushes.
const (
	EventPing            = "ping"
	EventPong            = "pong"
	EventSendMessage     = "send_message"
	EventReceiveMessage  = "receive_message"
	EventMessageSent     = "message_sent"
	EventSubscribeChat   = "subscribe_chat"
	EventUnsubscribeChat = "unsubscribe_chat"
	EventChatSnapshot    = "chat_snapshot"
	EventError           = "error"
)

type Event struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp"`
}

type SendMessageData struct {
	TempID      string `json:"temp_id,omitempty"`
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
}

type ReceiveMessageData struct {
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type MessageSentData struct {
	TempID    string `json:"temp_id,omitempty"`
	Delivered bool   `json:"delivered"`
}

type SubscribeChatData struct {
	ChatID string `json:"chat_id"`
}

type ErrorData struct {
	Message string `json:"message"`
}

// Encode marshals an event with the current timestamp. Marshal failures are
// impossible for the payload types above, so the error is dropped.
func Encode(eventType string, data interface{}) []byte {
	payload, _ := json.Marshal(data)
	frame, _ := json.Marshal(Event{
		Type:      eventType,
		Data:      payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return frame
}
