package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/library-service/internal/config"
	"github.com/spec-kit/library-service/internal/events"
	"github.com/spec-kit/library-service/internal/service"
)

func Test_NotificationService_HandlesPublishedEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, zap.NewNop(), config.NotificationConfig{
		EmailFrom:  "noreply@example.com",
		WebhookURL: "https://hooks.example.com/library",
	})
	notifications.RegisterHandlers()

	for _, eventType := range []events.EventType{
		events.EventBookRegistered,
		events.EventBookLoaned,
		events.EventBookReturned,
		events.EventUserCreated,
		events.EventUserDeleted,
	} {
		assert.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: eventType}))
	}
}

func Test_NotificationService_NilDispatcherIsSafe(t *testing.T) {
	notifications := service.NewNotificationService(nil, zap.NewNop(), config.NotificationConfig{})
	assert.NotPanics(t, notifications.RegisterHandlers)
}
