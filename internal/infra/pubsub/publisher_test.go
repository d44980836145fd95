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

	"inkq/config"
	"inkq/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.MediaEvent {
	return &service.MediaEvent{
		EventID:    "evt-1",
		Type:       service.MediaEventPortfolioAdded,
		UserID:     "0190f5c4-0000-7000-8000-000000000001",
		ImageID:    "0190f5c4-0000-7000-8000-000000000002",
		URL:        "/media/portfolio/a.jpg",
		ObjectKey:  "portfolio/a.jpg",
		OccurredAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		RequestID:  "req-123",
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var got PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, discardLogger())

	require.NoError(t, pub.Publish(context.Background(), testEvent()))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, "portfolio.added", got.Message.Attributes["event_type"])
	assert.Equal(t, "0190f5c4-0000-7000-8000-000000000001", got.Message.Attributes["user_id"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.MediaEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewLocalHTTPPublisher(srv.URL, discardLogger()).Publish(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attrs := eventAttributes(event)

	assert.NotContains(t, attrs, "request_id")
	assert.Equal(t, "evt-1", attrs["event_id"])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		events  *config.EventsConfig
		wantErr string
		check   func(t *testing.T, pub service.MediaEventPublisher)
	}{
		{
			name: "not configured",
			check: func(t *testing.T, pub service.MediaEventPublisher) {
				assert.IsType(t, &noopPublisher{}, pub)
				assert.NoError(t, pub.Publish(context.Background(), testEvent()))
			},
		},
		{
			name:   "empty provider",
			events: &config.EventsConfig{},
			check: func(t *testing.T, pub service.MediaEventPublisher) {
				assert.IsType(t, &noopPublisher{}, pub)
			},
		},
		{
			name:   "local",
			events: &config.EventsConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8081/push"},
			check: func(t *testing.T, pub service.MediaEventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, pub)
			},
		},
		{
			name:    "local without endpoint",
			events:  &config.EventsConfig{Provider: ProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			events:  &config.EventsConfig{Provider: ProviderGoogle, TopicID: "media"},
			wantErr: "project ID is required",
		},
		{
			name:    "google without topic",
			events:  &config.EventsConfig{Provider: ProviderGoogle, ProjectID: "inkq"},
			wantErr: "topic ID is required",
		},
		{
			name:    "unknown provider",
			events:  &config.EventsConfig{Provider: "kafka"},
			wantErr: "unknown events provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			pub, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{Events: tt.events},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, pub)

			lc.RequireStart().RequireStop()
		})
	}
}
