package preferences

import (
	"context"
	"log/slog"
	"time"

	"travelgo/internal/app/commands"
	"travelgo/internal/app/dto"
	"travelgo/internal/app/outbox"
	domainprefs "travelgo/internal/domain/preferences"
	"travelgo/internal/domain/shared/events"
)

const updatePreferencesKey = "preferences.update"

// UpdatePreferencesCommand changes theme and/or language; empty fields are kept.
type UpdatePreferencesCommand struct {
	ClientID string
	Theme    string
	Lang     string
	Now      time.Time
}

func (c UpdatePreferencesCommand) Key() string { return updatePreferencesKey }

func (c UpdatePreferencesCommand) Validate() error {
	return validateClient(c.ClientID)
}

type UpdatePreferencesHandler struct {
	Store   domainprefs.Store
	Outbox  outbox.Outbox
	Encoder outbox.EventEncoder
	Logger  *slog.Logger
}

func (h *UpdatePreferencesHandler) Handle(ctx context.Context, cmd UpdatePreferencesCommand) (dto.Preferences, error) {
	prefs, err := load(ctx, h.Store, cmd.ClientID)
	if err != nil {
		return dto.Preferences{}, err
	}
	now := cmd.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	langChanged, err := prefs.Update(cmd.Theme, cmd.Lang, now)
	if err != nil {
		return dto.Preferences{}, err
	}
	if err := h.Store.Save(ctx, prefs); err != nil {
		return dto.Preferences{}, err
	}
	if langChanged {
		ev := domainprefs.LanguageChangedEvent{ClientID: prefs.ClientID, Lang: prefs.Lang, At: prefs.UpdatedAt}
		if err := outbox.RecordDomainEvents(ctx, h.Outbox, h.Encoder, []events.DomainEvent{ev}); err != nil {
			return dto.Preferences{}, err
		}
		if h.Logger != nil {
			h.Logger.Info("language changed", "client_id", prefs.ClientID, "lang", prefs.Lang)
		}
	}
	return dto.MapPreferences(prefs), nil
}

var _ commands.Handler[UpdatePreferencesCommand, dto.Preferences] = (*UpdatePreferencesHandler)(nil)
