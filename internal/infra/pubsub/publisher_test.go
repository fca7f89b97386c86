package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"advisor/config"
	"advisor/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.QuestionnaireCompletedEvent {
	return &service.QuestionnaireCompletedEvent{
		SessionID:     "session-1",
		UserID:        "0190f5e4-7a1b-7c2d-8e3f-4a5b6c7d8e9f",
		AnsweredCount: 3,
		LastQuestion:  20,
		CompletedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PushMessage
	var sessionHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionHeader = r.Header.Get("session_id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "questionnaire-events", newDiscardLogger())
	require.NoError(t, publisher.PublishQuestionnaireCompleted(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())

	assert.Equal(t, "session-1", sessionHeader)
	assert.Equal(t, "projects/local/subscriptions/questionnaire-events-sub", received.Subscription)
	assert.Equal(t, "questionnaire.completed", received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.QuestionnaireCompletedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", newDiscardLogger())
	err := publisher.PublishQuestionnaireCompleted(context.Background(), testEvent())

	assert.ErrorContains(t, err, "500")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantErr  bool
		wantType any
	}{
		{name: "not configured", pubsub: nil, wantType: &noopPublisher{}},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:1/events"}, wantType: &localHTTPPublisher{}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	p := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, p.PublishQuestionnaireCompleted(context.Background(), testEvent()))
	assert.NoError(t, p.Close())
}
