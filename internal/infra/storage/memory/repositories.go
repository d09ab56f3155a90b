package memory

import (
	"context"
	"sync"

	"travelgo/internal/app/pages"
	"travelgo/internal/domain/preferences"
)

// PageRepository keeps live page views in memory.
type PageRepository struct {
	mu    sync.RWMutex
	items map[string]*pages.Page
}

func NewPageRepository() *PageRepository {
	return &PageRepository{items: make(map[string]*pages.Page)}
}

// ByID returns a page or pages.ErrPageNotFound.
func (r *PageRepository) ByID(ctx context.Context, id string) (*pages.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	page, ok := r.items[id]
	if !ok {
		return nil, pages.ErrPageNotFound
	}
	return page, nil
}

func (r *PageRepository) Save(ctx context.Context, page *pages.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[page.ID] = page
	return nil
}

func (r *PageRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pages.ErrPageNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *PageRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// CloseAll closes and forgets every page, used on shutdown.
func (r *PageRepository) CloseAll() {
	r.mu.Lock()
	items := r.items
	r.items = make(map[string]*pages.Page)
	r.mu.Unlock()
	for _, page := range items {
		page.Close()
	}
}

// PreferencesStore keeps client preferences in memory when no database is configured.
type PreferencesStore struct {
	mu    sync.RWMutex
	items map[string]preferences.Preferences
}

func NewPreferencesStore() *PreferencesStore {
	return &PreferencesStore{items: make(map[string]preferences.Preferences)}
}

func (s *PreferencesStore) Get(ctx context.Context, clientID string) (preferences.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefs, ok := s.items[clientID]
	if !ok {
		return preferences.Preferences{}, preferences.ErrNotFound
	}
	return prefs, nil
}

func (s *PreferencesStore) Save(ctx context.Context, prefs preferences.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[prefs.ClientID] = prefs
	return nil
}

var (
	_ pages.Repository  = (*PageRepository)(nil)
	_ preferences.Store = (*PreferencesStore)(nil)
)
