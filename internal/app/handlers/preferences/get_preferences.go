package preferences

import (
	"context"
	"errors"
	"strings"

	"travelgo/internal/app/dto"
	"travelgo/internal/app/queries"
	domainprefs "travelgo/internal/domain/preferences"
)

const getPreferencesKey = "preferences.get"

var ErrMissingClient = errors.New("preferences: client id required")

// GetPreferencesQuery returns stored preferences or the defaults for unknown clients.
type GetPreferencesQuery struct {
	ClientID string
}

func (q GetPreferencesQuery) Key() string { return getPreferencesKey }

func (q GetPreferencesQuery) Validate() error {
	return validateClient(q.ClientID)
}

type GetPreferencesHandler struct {
	Store domainprefs.Store
}

func (h *GetPreferencesHandler) Handle(ctx context.Context, q GetPreferencesQuery) (dto.Preferences, error) {
	prefs, err := load(ctx, h.Store, q.ClientID)
	if err != nil {
		return dto.Preferences{}, err
	}
	return dto.MapPreferences(prefs), nil
}

func load(ctx context.Context, store domainprefs.Store, clientID string) (domainprefs.Preferences, error) {
	prefs, err := store.Get(ctx, clientID)
	if errors.Is(err, domainprefs.ErrNotFound) {
		return domainprefs.Defaults(clientID), nil
	}
	return prefs, err
}

func validateClient(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingClient
	}
	return nil
}

var _ queries.Handler[GetPreferencesQuery, dto.Preferences] = (*GetPreferencesHandler)(nil)
