package engine

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/quizclash/go/internal/models"
	"github.com/mcdev12/quizclash/go/internal/quiz/events"
	"github.com/mcdev12/quizclash/go/internal/quiz/transport"
	"github.com/mcdev12/quizclash/go/internal/quiz/view"
)

// broadcastRecipient is the reserved placeholder some UIs use for "everyone".
// There is no broadcast implementation, so it is rejected like a missing
// recipient.
const broadcastRecipient = "all"

// chatPreviewLimit truncates inbound messages in notifications.
const chatPreviewLimit = 30

// MessagingRelay handles private-message sending and receiving. The local
// echo of an outbound message is appended only after the server ack, never
// optimistically. Inbound messages append in arrival order with no
// deduplication.
type MessagingRelay struct {
	engine *Engine
}

func newMessagingRelay(e *Engine) *MessagingRelay {
	return &MessagingRelay{engine: e}
}

func (m *MessagingRelay) send(toUID, text string) {
	e := m.engine

	text = strings.TrimSpace(text)
	if text == "" {
		e.notify("Cannot send an empty message.", view.SeverityWarning)
		return
	}
	if toUID == "" || toUID == broadcastRecipient || toUID == "lobby" {
		e.notify("Please select a recipient for private message.", view.SeverityWarning)
		return
	}

	req := events.PrivateMessageRequest{ToUID: toUID, Message: text}
	e.emit(events.IntentPrivateMessage, req, func(ack transport.Ack) {
		if !ack.OK() {
			e.notify(orDefault(ack.Message, "Failed to send private message."), view.SeverityDanger)
			return
		}
		message := models.ChatMessage{
			FromUID:   e.state.MyUID(),
			ToUID:     toUID,
			FromName:  "You",
			Text:      text,
			Timestamp: e.clock.Now(),
			IsOwn:     true,
		}
		e.state.appendChat(message)
		e.presenter.AppendChatMessage(view.ChatMessageView{
			FromName: message.FromName,
			ToName:   e.state.PlayerName(toUID),
			Text:     text,
			SentAt:   message.Timestamp,
			Own:      true,
		})
	})
}

func (m *MessagingRelay) handleIncoming(data []byte) {
	e := m.engine

	payload, err := events.DecodePrivateMessage(data)
	if err != nil {
		log.Error().Err(err).Msg("dropping private message")
		return
	}

	own := payload.FromUID == e.state.MyUID()
	name := m.senderName(payload.FromUID, own)

	message := models.ChatMessage{
		FromUID:   payload.FromUID,
		FromName:  name,
		Text:      payload.Message,
		Timestamp: time.UnixMilli(payload.Timestamp),
		IsOwn:     own,
	}
	e.state.appendChat(message)
	e.presenter.AppendChatMessage(view.ChatMessageView{
		FromName: name,
		Text:     payload.Message,
		SentAt:   message.Timestamp,
		Own:      own,
	})

	if !own {
		preview := payload.Message
		if len(preview) > chatPreviewLimit {
			preview = preview[:chatPreviewLimit] + "..."
		}
		e.presenter.Notify(view.Notification{
			Message:  "New PM from " + name + ": " + preview,
			Severity: view.SeverityInfo,
			Duration: 3500 * time.Millisecond,
		})
	}
}

// senderName resolves a display name for an inbound message, degrading to a
// placeholder built from the first 4 characters of the uid for senders no
// longer in the roster.
func (m *MessagingRelay) senderName(fromUID string, own bool) string {
	if player, ok := findPlayer(m.engine.state.Players(), fromUID); ok {
		return player.DisplayName()
	}
	if own {
		return "You (echo)"
	}
	uid := fromUID
	if len(uid) > 4 {
		uid = uid[:4]
	}
	return "User " + uid
}
