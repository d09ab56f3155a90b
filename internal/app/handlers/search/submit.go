package search

import (
	"context"
	"log/slog"
	"time"

	"travelgo/internal/app/commands"
	"travelgo/internal/app/outbox"
	domainsearch "travelgo/internal/domain/search"
)

const submitSearchKey = "search.submit"

// DefaultFormID names the standalone search form.
const DefaultFormID = "search"

// SubmitSearchCommand submits a search form. Form is the page-owned form when the
// submission comes from a page view; otherwise a fresh form is used. Values, when set,
// replace the form controls before submitting.
type SubmitSearchCommand struct {
	FormID string
	Form   *domainsearch.Form
	Values *domainsearch.Values
	Now    time.Time
}

func (c SubmitSearchCommand) Key() string { return submitSearchKey }

type Counter interface {
	SearchSubmitted()
}

type SubmitSearchHandler struct {
	Outbox  outbox.Outbox
	Encoder outbox.EventEncoder
	Logger  *slog.Logger
	Counter Counter
}

func (h *SubmitSearchHandler) Handle(ctx context.Context, cmd SubmitSearchCommand) (domainsearch.Detail, error) {
	form := cmd.Form
	if form == nil {
		id := cmd.FormID
		if id == "" {
			id = DefaultFormID
		}
		now := cmd.Now
		if now.IsZero() {
			now = time.Now().UTC()
		}
		form = domainsearch.NewForm(id, func() time.Time { return now })
	}
	if cmd.Values != nil {
		form.SetValues(*cmd.Values)
	}

	detail := form.Submit()
	if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, form.DrainEvents()); err != nil {
		return domainsearch.Detail{}, err
	}
	if h.Counter != nil {
		h.Counter.SearchSubmitted()
	}
	if h.Logger != nil {
		h.Logger.Info("search submitted", "form_id", form.ID(), "country", detail.CountryKey, "days_range", detail.DaysRange)
	}
	return detail, nil
}

var _ commands.Handler[SubmitSearchCommand, domainsearch.Detail] = (*SubmitSearchHandler)(nil)
