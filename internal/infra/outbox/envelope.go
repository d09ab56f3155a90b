package outbox

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// Envelope wraps event payloads as CloudEvents and routes them to "<prefix><aggregate>.events.v1".
type Envelope struct {
	Source      string
	TopicPrefix string
}

func (e Envelope) Topic(name string) string {
	base := name
	if idx := strings.IndexRune(name, '.'); idx > 0 {
		base = name[:idx]
	}
	return e.TopicPrefix + base + ".events.v1"
}

func (e Envelope) Wrap(name string, occurredAt time.Time, payload []byte, headers map[string]string) ([]byte, map[string]string, error) {
	data := map[string]any{}
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, nil, err
	}
	evt := map[string]any{
		"specversion":     "1.0",
		"id":              uuid.NewString(),
		"type":            name + ".v1",
		"source":          e.source(),
		"time":            occurredAt,
		"datacontenttype": "application/json",
		"data":            data,
	}
	if trace, ok := headers["traceparent"]; ok {
		evt["traceparent"] = trace
	}
	out, err := json.Marshal(evt)
	if err != nil {
		return nil, nil, err
	}
	outHeaders := map[string]string{
		"content-type": "application/cloudevents+json",
	}
	for k, v := range headers {
		outHeaders[k] = v
	}
	return out, outHeaders, nil
}

func (e Envelope) source() string {
	if e.Source != "" {
		return e.Source
	}
	return "app://travelgo"
}
