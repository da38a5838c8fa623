package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"researchhub/internal/adapter/api/middleware"
	ws "researchhub/internal/infrastructure/websocket"
	"researchhub/internal/usecase"
	"researchhub/pkg/errors"
	"researchhub/pkg/logger"
)

type WebSocketHandler struct {
	wsManager      *ws.Manager
	chatUseCase    *usecase.ChatUseCase
	authMiddleware *middleware.AuthMiddleware
	supportAdminID string
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict origins once the widget domains are fixed
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, chatUseCase *usecase.ChatUseCase, authMiddleware *middleware.AuthMiddleware, supportAdminID string) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		chatUseCase:    chatUseCase,
		authMiddleware: authMiddleware,
		supportAdminID: supportAdminID,
	}
}

// HandleWebSocket upgrades the connection for the support chat widget. The
// widget cannot set headers, so the token rides in the query string.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	userID, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := ws.NewClient(userID, conn)
	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager, h.handleEvent)
	go client.WritePump()

	return nil
}

func (h *WebSocketHandler) handleEvent(client *ws.Client, raw []byte) {
	var event ws.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		client.Send <- ws.Encode(ws.EventError, ws.ErrorData{Message: "Malformed event"})
		return
	}

	switch event.Type {
	case ws.EventPing:
		client.Send <- ws.Encode(ws.EventPong, nil)

	case ws.EventSendMessage:
		h.handleSendMessage(client, event.Data)

	case ws.EventSubscribeChat:
		h.handleSubscribe(client, event.Data)

	case ws.EventUnsubscribeChat:
		var data ws.SubscribeChatData
		if err := json.Unmarshal(event.Data, &data); err != nil || data.ChatID == "" {
			client.Send <- ws.Encode(ws.EventError, ws.ErrorData{Message: "chat_id is required"})
			return
		}
		client.RemoveWatch(data.ChatID)

	default:
		client.Send <- ws.Encode(ws.EventError, ws.ErrorData{Message: "Unknown event type: " + event.Type})
	}
}

func (h *WebSocketHandler) handleSendMessage(client *ws.Client, payload json.RawMessage) {
	var data ws.SendMessageData
	if err := json.Unmarshal(payload, &data); err != nil || data.Text == "" {
		client.Send <- ws.Encode(ws.EventError, ws.ErrorData{Message: "Message text is required"})
		return
	}

	recipientID := data.RecipientID
	if recipientID == "" {
		recipientID = h.supportAdminID
	}
	if recipientID == "" {
		client.Send <- ws.Encode(ws.EventError, ws.ErrorData{Message: "No recipient available"})
		return
	}

	_, msg, err := h.chatUseCase.SendDirectMessage(context.Background(), client.UserID, recipientID, data.Text)
	if err != nil {
		logger.Warn("Support chat message from %s failed: %v", client.UserID, err)
		client.Send <- ws.Encode(ws.EventError, ws.ErrorData{Message: "Failed to send message"})
		client.Send <- ws.Encode(ws.EventMessageSent, ws.MessageSentData{TempID: data.TempID, Delivered: false})
		return
	}

	delivered := h.wsManager.SendToUser(recipientID, ws.Encode(ws.EventReceiveMessage, ws.ReceiveMessageData{
		SenderID:  client.UserID,
		Text:      msg.Text,
		Timestamp: msg.Timestamp.UTC().Format(time.RFC3339),
	}))

	client.Send <- ws.Encode(ws.EventMessageSent, ws.MessageSentData{TempID: data.TempID, Delivered: delivered})
}

func (h *WebSocketHandler) handleSubscribe(client *ws.Client, payload json.RawMessage) {
	var data ws.SubscribeChatData
	if err := json.Unmarshal(payload, &data); err != nil || data.ChatID == "" {
		client.Send <- ws.Encode(ws.EventError, ws.ErrorData{Message: "chat_id is required"})
		return
	}

	userID := client.UserID
	cancel, err := h.chatUseCase.Watch(context.Background(), userID, data.ChatID, func(snapshot usecase.ChatSnapshot) {
		// SendToUser re-checks registration, so a snapshot arriving after
		// the connection dropped is silently discarded.
		h.wsManager.SendToUser(userID, ws.Encode(ws.EventChatSnapshot, snapshot))
	})
	if err != nil {
		client.Send <- ws.Encode(ws.EventError, ws.ErrorData{Message: "Failed to subscribe to chat"})
		return
	}

	client.AddWatch(data.ChatID, cancel)
}
