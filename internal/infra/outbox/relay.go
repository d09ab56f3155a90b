package outbox

import (
	"context"
	"log/slog"
	"sync"

	appoutbox "travelgo/internal/app/outbox"
)

// Relay is the in-memory outbox: records are buffered per command and published on
// Flush. Records that fail to publish stay buffered for the next flush. Without a
// producer, flushed records are dropped.
type Relay struct {
	producer Producer
	envelope Envelope
	logger   *slog.Logger

	mu      sync.Mutex
	records []appoutbox.EventRecord
}

func NewRelay(producer Producer, envelope Envelope, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{producer: producer, envelope: envelope, logger: logger}
}

func (r *Relay) Add(ctx context.Context, record appoutbox.EventRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *Relay) Flush(ctx context.Context) error {
	r.mu.Lock()
	pending := r.records
	r.records = nil
	r.mu.Unlock()

	if r.producer == nil {
		for _, rec := range pending {
			r.logger.Debug("event dropped, no producer configured", "event", rec.Name, "id", rec.ID)
		}
		return nil
	}

	var failed []appoutbox.EventRecord
	for _, rec := range pending {
		payload, headers, err := r.envelope.Wrap(rec.Name, rec.OccurredAt, rec.Payload, rec.Headers)
		if err != nil {
			r.logger.Error("event envelope failed", "event", rec.Name, "id", rec.ID, "error", err)
			continue
		}
		if err := r.producer.Publish(ctx, r.envelope.Topic(rec.Name), rec.Aggregate, payload, headers); err != nil {
			r.logger.Warn("event publish failed, will retry", "event", rec.Name, "id", rec.ID, "error", err)
			failed = append(failed, rec)
			continue
		}
		r.logger.Debug("event published", "event", rec.Name, "id", rec.ID)
	}

	if len(failed) > 0 {
		r.mu.Lock()
		r.records = append(failed, r.records...)
		r.mu.Unlock()
	}
	return nil
}

// Pending reports how many records wait for the next flush.
func (r *Relay) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

var _ appoutbox.Outbox = (*Relay)(nil)
