package pages

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"travelgo/internal/app/catalog"
	"travelgo/internal/app/commands"
	searchhandlers "travelgo/internal/app/handlers/search"
	"travelgo/internal/domain/datepicker"
	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/search"
	"travelgo/internal/domain/tours"
)

type ToursProvider interface {
	Get(ctx context.Context) ([]tours.Tour, error)
}

type CopyProvider interface {
	Get(ctx context.Context) (*i18n.Copy, error)
}

// Gauge receives the number of open pages.
type Gauge interface {
	SetOpenPages(n int)
}

type Options struct {
	PriceMax    float64
	Debounce    time.Duration
	DefaultLang string
	Clock       datepicker.Clock
	Scheduler   catalog.Scheduler
	Logger      *slog.Logger
	Gauge       Gauge
	IDGenerator func() string
}

// Service creates page views and routes user interactions to them.
type Service struct {
	repo     Repository
	tours    ToursProvider
	copy     CopyProvider
	commands commands.Bus
	opts     Options
	logger   *slog.Logger
}

func NewService(repo Repository, toursProvider ToursProvider, copyProvider CopyProvider, bus commands.Bus, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = datepicker.SystemClock{}
	}
	if opts.IDGenerator == nil {
		opts.IDGenerator = uuid.NewString
	}
	if opts.DefaultLang == "" {
		opts.DefaultLang = i18n.DefaultLang
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, tours: toursProvider, copy: copyProvider, commands: bus, opts: opts, logger: logger}
}

// Create opens a page, loads the shared resources into it and renders it. Resource
// failures degrade the page and are not returned.
func (s *Service) Create(ctx context.Context, lang string) (View, error) {
	if lang == "" {
		lang = s.opts.DefaultLang
	}
	lang = i18n.Normalize(lang)
	id := s.opts.IDGenerator()
	ctl := catalog.New(catalog.Options{
		PriceMax:  s.opts.PriceMax,
		Debounce:  s.opts.Debounce,
		Lang:      lang,
		Scheduler: s.opts.Scheduler,
		Logger:    s.logger.With("page_id", id),
	})
	page := newPage(id, lang, s.opts.Clock.Now(), ctl, datepicker.NewController(s.opts.Clock), search.NewForm(SearchForm, s.opts.Clock.Now))

	if s.copy != nil {
		doc, err := s.copy.Get(ctx)
		if err != nil {
			s.logger.Warn("copy unavailable, using defaults", "page_id", id, "error", err)
		} else {
			ctl.SetCopy(doc)
			page.setCopy(doc)
		}
	}
	// Load records the failure on the controller, which then renders the load-failed view.
	_ = ctl.Load(ctx, tours.SourceFunc(s.tours.Get))

	if err := s.repo.Save(ctx, page); err != nil {
		page.Close()
		return View{}, err
	}
	s.reportCount()
	return render(page), nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	return s.with(ctx, id, func(*Page) error { return nil })
}

func (s *Service) Close(ctx context.Context, id string) error {
	page, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	page.Close()
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.reportCount()
	return nil
}

func (s *Service) SetFilters(ctx context.Context, id string, ch catalog.Changes) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		p.Catalog.SetFilters(ch)
		return nil
	})
}

// InputPrice records slider movement; the catalog recomputes after the debounce delay.
func (s *Service) InputPrice(ctx context.Context, id string, value float64) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		p.Catalog.InputPrice(value)
		return nil
	})
}

func (s *Service) ClearFilter(ctx context.Context, id, key string) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		return p.Catalog.ClearFilter(key)
	})
}

func (s *Service) ApplySearch(ctx context.Context, id string, detail search.Detail) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		p.Catalog.ApplySearch(detail)
		return nil
	})
}

// ApplyStoredSearch applies a search handed over from another page. The bool reports
// whether the payload was usable.
func (s *Service) ApplyStoredSearch(ctx context.Context, id string, raw []byte) (View, bool, error) {
	applied := false
	view, err := s.with(ctx, id, func(p *Page) error {
		applied = p.Catalog.ApplyStoredSearch(raw)
		return nil
	})
	return view, applied, err
}

func (s *Service) SetLanguage(ctx context.Context, id, lang string) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		p.Catalog.SetLanguage(p.setLang(lang))
		return nil
	})
}

func (s *Service) SetSearchValues(ctx context.Context, id string, values search.Values) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		p.Search.SetValues(values)
		return nil
	})
}

// SubmitSearch submits the page search form; the catalog picks the detail up through
// its subscription.
func (s *Service) SubmitSearch(ctx context.Context, id string, values *search.Values) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		_, err := commands.Dispatch[searchhandlers.SubmitSearchCommand, search.Detail](ctx, s.commands, searchhandlers.SubmitSearchCommand{
			FormID: SearchForm,
			Form:   p.Search,
			Values: values,
		})
		return err
	})
}

func (s *Service) OpenPicker(ctx context.Context, id, form, focused string, focusables []string) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		return p.Picker.Open(form, focused, focusables)
	})
}

func (s *Service) ClickDay(ctx context.Context, id, value string) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		return p.Picker.Click(value)
	})
}

func (s *Service) EditPickerInputs(ctx context.Context, id, start, end string) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		return p.Picker.EditInputs(start, end)
	})
}

func (s *Service) FocusPicker(ctx context.Context, id, element string) (View, error) {
	return s.with(ctx, id, func(p *Page) error {
		return p.Picker.Focus(element)
	})
}

func (s *Service) ApplyPicker(ctx context.Context, id string) (View, error) {
	restore := ""
	view, err := s.with(ctx, id, func(p *Page) error {
		var err error
		restore, err = p.Picker.Apply()
		return err
	})
	view.RestoreFocus = restore
	return view, err
}

func (s *Service) CancelPicker(ctx context.Context, id string) (View, error) {
	restore := ""
	view, err := s.with(ctx, id, func(p *Page) error {
		restore = p.Picker.Cancel()
		return nil
	})
	view.RestoreFocus = restore
	return view, err
}

// PickerKey forwards a key press. Escape closes the picker and reports the focus
// restore target; Tab moves focus inside the modal.
func (s *Service) PickerKey(ctx context.Context, id, key string, shift bool) (View, error) {
	restore := ""
	view, err := s.with(ctx, id, func(p *Page) error {
		target, err := p.Picker.Key(key, shift)
		if err != nil {
			return err
		}
		if !p.Picker.State().IsOpen() {
			restore = target
		}
		return nil
	})
	view.RestoreFocus = restore
	return view, err
}

func (s *Service) with(ctx context.Context, id string, fn func(*Page) error) (View, error) {
	page, err := s.repo.ByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	if err := fn(page); err != nil {
		return View{}, err
	}
	return render(page), nil
}

func (s *Service) reportCount() {
	if s.opts.Gauge != nil {
		s.opts.Gauge.SetOpenPages(s.repo.Count())
	}
}
