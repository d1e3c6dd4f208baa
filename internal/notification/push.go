package notification

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/rs/zerolog/log"
)

// Outcome reports how a delivery attempt ended. None of the outcomes is an
// error for the caller: the notification is already durable by the time
// delivery is attempted.
type Outcome int

const (
	OutcomeSent Outcome = iota
	OutcomeNoAddress
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeNoAddress:
		return "no_address"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PushSender is the outbound push channel.
type PushSender interface {
	Send(ctx context.Context, token string, notification *db.Notification) error
}

// FCMSender delivers pushes through Firebase Cloud Messaging.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

func (s *FCMSender) Send(ctx context.Context, token string, notification *db.Notification) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Message,
		},
		Data: notification.Data,
	})

	return err
}

// Gateway resolves a recipient's push token and attempts delivery. The token
// is resolved fresh on every attempt since devices rotate tokens between
// events. Channel failures are logged, never raised to the caller.
type Gateway struct {
	store  db.Store
	sender PushSender
}

func NewGateway(store db.Store, sender PushSender) *Gateway {
	return &Gateway{store: store, sender: sender}
}

func (g *Gateway) Deliver(ctx context.Context, userID string, notification *db.Notification) Outcome {
	user, err := g.store.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("failed to resolve push token")
		return OutcomeFailed
	}

	if user.FCMToken == "" {
		log.Info().Str("user_id", userID).Msg("no FCM token registered, skipping push")
		return OutcomeNoAddress
	}

	if err = g.sender.Send(ctx, user.FCMToken, notification); err != nil {
		log.Err(err).Str("user_id", userID).Str("type", notification.Type).Msg("failed to send push notification")
		return OutcomeFailed
	}

	log.Info().Str("user_id", userID).Str("type", notification.Type).Msg("push notification sent")
	return OutcomeSent
}
