package search

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelgo/internal/app/outbox"
	domainsearch "travelgo/internal/domain/search"
)

type memoryOutbox struct{ records []outbox.EventRecord }

func (o *memoryOutbox) Add(_ context.Context, rec outbox.EventRecord) error {
	o.records = append(o.records, rec)
	return nil
}

func (o *memoryOutbox) Flush(context.Context) error { return nil }

type counter int

func (c *counter) SearchSubmitted() { *c++ }

func TestSubmitSearchRecordsEvent(t *testing.T) {
	box := &memoryOutbox{}
	var submitted counter
	h := &SubmitSearchHandler{Outbox: box, Counter: &submitted}

	detail, err := h.Handle(context.Background(), SubmitSearchCommand{
		Values: &domainsearch.Values{Destination: " gr ", Start: "2024-08-01", End: "2024-08-07", People: "2"},
		Now:    time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, detail.CountryKey)
	assert.Equal(t, "gr", *detail.CountryKey)
	require.NotNil(t, detail.DaysRange)
	assert.Equal(t, "7-8", *detail.DaysRange)

	require.Len(t, box.records, 1)
	rec := box.records[0]
	assert.Equal(t, "search.submitted", rec.Name)
	assert.Equal(t, DefaultFormID, rec.Aggregate)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Payload, &payload))
	assert.Equal(t, "search", payload["formId"])
	assert.Equal(t, counter(1), submitted)
}

func TestSubmitSearchUsesPageForm(t *testing.T) {
	form := domainsearch.NewForm("page-search", nil)
	form.SetValues(domainsearch.Values{Destination: "it"})
	var seen []domainsearch.SubmittedEvent
	form.OnSubmit(func(ev domainsearch.SubmittedEvent) { seen = append(seen, ev) })

	h := &SubmitSearchHandler{}
	detail, err := h.Handle(context.Background(), SubmitSearchCommand{Form: form})
	require.NoError(t, err)
	require.NotNil(t, detail.CountryKey)
	assert.Equal(t, "it", *detail.CountryKey)
	require.Len(t, seen, 1)
	assert.Equal(t, "page-search", seen[0].FormID)
	assert.Empty(t, form.DrainEvents())
}
