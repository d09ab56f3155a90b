package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appoutbox "travelgo/internal/app/outbox"
)

type published struct {
	topic   string
	key     string
	payload []byte
	headers map[string]string
}

type fakeProducer struct {
	fail bool
	out  []published
}

func (p *fakeProducer) Publish(_ context.Context, topic, key string, payload []byte, headers map[string]string) error {
	if p.fail {
		return errors.New("broker down")
	}
	p.out = append(p.out, published{topic: topic, key: key, payload: payload, headers: headers})
	return nil
}

func record() appoutbox.EventRecord {
	return appoutbox.EventRecord{
		ID:         "evt-1",
		Name:       "search.submitted",
		Payload:    []byte(`{"formId":"search"}`),
		OccurredAt: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		Aggregate:  "search",
		Headers:    map[string]string{"x-request-id": "req-1"},
	}
}

func TestEnvelopeTopic(t *testing.T) {
	assert.Equal(t, "search.events.v1", Envelope{}.Topic("search.submitted"))
	assert.Equal(t, "prod.language.events.v1", Envelope{TopicPrefix: "prod."}.Topic("language.changed"))
}

func TestRelayPublishesCloudEvents(t *testing.T) {
	producer := &fakeProducer{}
	relay := NewRelay(producer, Envelope{TopicPrefix: "dev."}, nil)
	require.NoError(t, relay.Add(context.Background(), record()))
	require.NoError(t, relay.Flush(context.Background()))

	require.Len(t, producer.out, 1)
	msg := producer.out[0]
	assert.Equal(t, "dev.search.events.v1", msg.topic)
	assert.Equal(t, "search", msg.key)
	assert.Equal(t, "application/cloudevents+json", msg.headers["content-type"])
	assert.Equal(t, "req-1", msg.headers["x-request-id"])

	var evt map[string]any
	require.NoError(t, json.Unmarshal(msg.payload, &evt))
	assert.Equal(t, "search.submitted.v1", evt["type"])
	assert.Equal(t, "app://travelgo", evt["source"])
	assert.Equal(t, map[string]any{"formId": "search"}, evt["data"])
	assert.Equal(t, 0, relay.Pending())
}

func TestRelayKeepsFailedRecords(t *testing.T) {
	producer := &fakeProducer{fail: true}
	relay := NewRelay(producer, Envelope{}, nil)
	require.NoError(t, relay.Add(context.Background(), record()))
	require.NoError(t, relay.Flush(context.Background()))
	assert.Equal(t, 1, relay.Pending())

	producer.fail = false
	require.NoError(t, relay.Flush(context.Background()))
	assert.Equal(t, 0, relay.Pending())
	assert.Len(t, producer.out, 1)
}

func TestRelayWithoutProducerDrops(t *testing.T) {
	relay := NewRelay(nil, Envelope{}, nil)
	require.NoError(t, relay.Add(context.Background(), record()))
	require.NoError(t, relay.Flush(context.Background()))
	assert.Equal(t, 0, relay.Pending())
}
