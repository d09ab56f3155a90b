package pages

import (
	"context"
	"errors"
	"sync"
	"time"

	"travelgo/internal/app/catalog"
	"travelgo/internal/domain/datepicker"
	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/search"
)

var ErrPageNotFound = errors.New("pages: page not found")

const defaultStatusAccepted = "Параметры приняты. Переходим к каталогу."

// Form ids registered on every page picker.
const (
	FiltersForm = "filters"
	SearchForm  = "search"
)

// Repository keeps live page views.
type Repository interface {
	Save(ctx context.Context, page *Page) error
	ByID(ctx context.Context, id string) (*Page, error)
	Delete(ctx context.Context, id string) error
	Count() int
}

// Page is one open catalog page: the filter form, the shared date picker and the search form.
type Page struct {
	ID        string
	CreatedAt time.Time

	Catalog *catalog.Controller
	Picker  *datepicker.Controller
	Search  *search.Form

	mu          sync.Mutex
	lang        string
	copy        *i18n.Copy
	lastSearch  *search.Detail
	unsubscribe []func()
}

func newPage(id string, lang string, createdAt time.Time, ctl *catalog.Controller, picker *datepicker.Controller, form *search.Form) *Page {
	p := &Page{
		ID:        id,
		CreatedAt: createdAt,
		Catalog:   ctl,
		Picker:    picker,
		Search:    form,
		lang:      i18n.Normalize(lang),
	}
	picker.Register(FiltersForm, ctl)
	picker.Register(SearchForm, form)
	p.unsubscribe = append(p.unsubscribe, form.OnSubmit(func(ev search.SubmittedEvent) {
		detail := ev.Detail
		p.mu.Lock()
		p.lastSearch = &detail
		p.mu.Unlock()
		ctl.ApplySearch(detail)
	}))
	return p
}

func (p *Page) Lang() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lang
}

func (p *Page) setLang(lang string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lang = i18n.Normalize(lang)
	return p.lang
}

func (p *Page) setCopy(doc *i18n.Copy) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.copy = doc
}

// SearchStatus is the confirmation shown under the search form once a search was
// submitted, empty before that.
func (p *Page) SearchStatus() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastSearch == nil {
		return ""
	}
	return p.copy.Block("search", p.lang).String("statusAccepted", defaultStatusAccepted)
}

func (p *Page) LastSearch() *search.Detail {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSearch
}

// Close stops pending timers and drops subscriptions.
func (p *Page) Close() {
	p.mu.Lock()
	subs := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()
	for _, unsub := range subs {
		unsub()
	}
	p.Catalog.Close()
	p.Picker.Cancel()
}
