package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travelgo/internal/domain/datepicker"
	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/search"
	"travelgo/internal/domain/shared/events"
	"travelgo/internal/domain/tours"
)

type Options struct {
	// PriceMax is the slider maximum; the price control starts there.
	PriceMax  float64
	Debounce  time.Duration
	Lang      string
	Scheduler Scheduler
	Logger    *slog.Logger
}

// Controller owns the filter form of one catalog page and re-renders it on every trigger.
type Controller struct {
	logger   *slog.Logger
	priceMax float64
	debounce *debouncer

	mu         sync.Mutex
	lang       string
	copy       *i18n.Copy
	controls   Controls
	state      tours.FilterState
	tours      []tours.Tour
	countries  []tours.CountryOption
	loaded     bool
	loadFailed bool
	view       View

	rendered events.Listeners[View]
}

func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		logger:   logger,
		priceMax: opts.PriceMax,
		debounce: newDebouncer(opts.Scheduler, opts.Debounce),
		lang:     i18n.Normalize(opts.Lang),
		controls: Controls{Price: opts.PriceMax},
	}
	c.mu.Lock()
	c.syncLocked()
	c.view = c.renderLocked()
	c.mu.Unlock()
	return c
}

// OnRender subscribes to rendered views.
func (c *Controller) OnRender(fn func(View)) func() {
	return c.rendered.Subscribe(fn)
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Controls returns the live form values, including slider input not yet recomputed.
func (c *Controller) Controls() Controls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controls
}

func (c *Controller) State() tours.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load fetches the tour collection once. A failure puts the catalog into a permanent
// load-failed state; the error is returned for logging only.
func (c *Controller) Load(ctx context.Context, src tours.Source) error {
	list, err := src.LoadTours(ctx)
	if err != nil {
		c.logger.Warn("catalog load failed", "error", err)
		c.update(func() {
			c.loadFailed = true
		})
		return err
	}
	c.update(func() {
		if c.loadFailed {
			return
		}
		c.tours = list
		c.countries = tours.Countries(list, c.lang)
		c.loaded = true
	})
	return nil
}

// SetCopy installs the copy document. A nil document keeps the built-in defaults.
func (c *Controller) SetCopy(doc *i18n.Copy) {
	c.update(func() {
		c.copy = doc
	})
}

// SetFilters applies control changes and recomputes.
func (c *Controller) SetFilters(ch Changes) {
	c.update(func() {
		c.controls.apply(ch)
	})
}

// InputPrice records continuous slider input. Recompute happens once the input settles.
func (c *Controller) InputPrice(value float64) {
	c.mu.Lock()
	c.controls.Price = c.clampPrice(value)
	c.mu.Unlock()
	c.debounce.trigger(c.Refresh)
}

// ClearFilter resets a single filter: price to the slider maximum, period to both empty
// bounds, anything else to "any".
func (c *Controller) ClearFilter(key string) error {
	switch key {
	case KeyCountry, KeyPrice, KeyPeriod, KeyDays, KeyPeople, KeyRating:
	default:
		return ErrUnknownFilter
	}
	c.update(func() {
		switch key {
		case KeyPrice:
			if c.priceMax > 0 {
				c.controls.Price = c.priceMax
			}
		case KeyPeriod:
			c.controls.PeriodStart, c.controls.PeriodEnd = "", ""
		case KeyCountry:
			c.controls.Country = ""
		case KeyDays:
			c.controls.Days = ""
		case KeyPeople:
			c.controls.People = ""
		case KeyRating:
			c.controls.Rating = ""
		}
	})
	return nil
}

// ApplySearch merges a search detail into the form. Only provided keys change.
func (c *Controller) ApplySearch(d search.Detail) {
	c.update(func() {
		filtersCopy := c.copy.Block("filters", c.lang)
		if d.CountryKey != nil {
			c.controls.Country = *d.CountryKey
			if c.loaded {
				c.controls.Country = pick(buildCountryOptions(c.countries, "", filtersCopy), *d.CountryKey)
			}
		}
		if d.DaysRange != nil {
			c.controls.Days = pick(buildOptions(KeyDays, "", filtersCopy), *d.DaysRange)
		}
		if d.People != nil {
			c.controls.People = pick(buildOptions(KeyPeople, "", filtersCopy), *d.People)
		}
		if d.HasPeriod() {
			c.controls.PeriodStart, c.controls.PeriodEnd = d.Period()
		}
	})
}

// ApplyStoredSearch applies a serialized detail left by another page.
// Malformed payloads are ignored and reported as not applied.
func (c *Controller) ApplyStoredSearch(raw []byte) bool {
	d, err := search.DecodeDetail(raw)
	if err != nil {
		c.logger.Debug("stored search ignored", "error", err)
		return false
	}
	c.ApplySearch(d)
	return true
}

func (c *Controller) SetLanguage(lang string) {
	c.update(func() {
		c.lang = i18n.Normalize(lang)
		c.countries = tours.Countries(c.tours, c.lang)
	})
}

// Refresh re-syncs state from the controls and re-renders.
func (c *Controller) Refresh() {
	c.update(func() {})
}

// Period and ApplyPeriod bind the filter form to the shared date picker.
func (c *Controller) Period() datepicker.Range {
	c.mu.Lock()
	defer c.mu.Unlock()
	return datepicker.Range{Start: c.controls.PeriodStart, End: c.controls.PeriodEnd}
}

func (c *Controller) ApplyPeriod(r datepicker.Range) {
	c.update(func() {
		c.controls.PeriodStart, c.controls.PeriodEnd = r.Start, r.End
	})
}

// Close stops a pending debounced recompute.
func (c *Controller) Close() {
	c.debounce.stop()
}

func (c *Controller) update(mutate func()) {
	c.mu.Lock()
	mutate()
	c.syncLocked()
	view := c.renderLocked()
	c.view = view
	c.mu.Unlock()

	c.rendered.Emit(view)
}

func (c *Controller) syncLocked() {
	c.state = c.controls.state()
}

func (c *Controller) clampPrice(v float64) float64 {
	if v < 0 {
		return 0
	}
	if c.priceMax > 0 && v > c.priceMax {
		return c.priceMax
	}
	return v
}

func (c *Controller) renderLocked() View {
	lang := c.lang
	catalogCopy := c.copy.Block("catalog", lang)
	filtersCopy := c.copy.Block("filters", lang)

	options := map[string][]Option{
		KeyCountry: buildCountryOptions(c.countries, c.controls.Country, filtersCopy),
		KeyDays:    buildOptions(KeyDays, c.controls.Days, filtersCopy),
		KeyPeople:  buildOptions(KeyPeople, c.controls.People, filtersCopy),
		KeyRating:  buildOptions(KeyRating, c.controls.Rating, filtersCopy),
	}

	priceValue := c.state.Price
	if priceValue == 0 {
		priceValue = c.controls.Price
	}
	period := datepicker.Range{Start: c.controls.PeriodStart, End: c.controls.PeriodEnd}

	v := View{
		Lang:        lang,
		Loaded:      c.loaded,
		LoadFailed:  c.loadFailed,
		Controls:    c.controls,
		Filters:     c.state,
		PriceMax:    c.priceMax,
		PriceLabel:  i18n.Interpolate(filtersCopy.String("priceTo", defaultPriceTo), map[string]any{"value": formatNumber(priceValue)}),
		PeriodLabel: datepicker.TriggerLabel(period, lang, filtersCopy.String("periodPlaceholder", defaultPeriodHolder)),
		Options:     options,
		Summary:     c.summaryLocked(options, filtersCopy),
	}

	switch {
	case c.loadFailed:
		v.Message = catalogCopy.String("error", defaultLoadError)
	case !c.loaded:
	default:
		filtered := tours.ApplyFilters(c.tours, c.state)
		v.Count = len(filtered)
		v.Status = i18n.Interpolate(catalogCopy.String("results", defaultResults), map[string]any{"count": v.Count})
		if len(filtered) == 0 {
			v.Empty = true
			v.Message = filtersCopy.String("empty", defaultEmpty)
			break
		}
		v.Cards = make([]Card, 0, len(filtered))
		for _, tour := range filtered {
			v.Cards = append(v.Cards, buildCard(tour, lang, c.copy))
		}
	}
	return v
}

func (c *Controller) summaryLocked(options map[string][]Option, filtersCopy i18n.Block) []Chip {
	var chips []Chip
	add := func(key, label string) {
		if label != "" {
			chips = append(chips, Chip{Key: key, Label: label})
		}
	}

	if price := c.controls.Price; price != 0 && (c.priceMax == 0 || price < c.priceMax) {
		add(KeyPrice, i18n.Interpolate(filtersCopy.String("priceTo", defaultChipPriceTo), map[string]any{"value": formatNumber(price)}))
	}
	add(KeyPeriod, datepicker.PeriodLabel(datepicker.Range{Start: c.controls.PeriodStart, End: c.controls.PeriodEnd}, c.lang))
	add(KeyDays, selectedLabel(options[KeyDays], c.controls.Days))
	add(KeyPeople, selectedLabel(options[KeyPeople], c.controls.People))
	add(KeyRating, selectedLabel(options[KeyRating], c.controls.Rating))
	if label := selectedLabel(options[KeyCountry], c.controls.Country); label != "" {
		chips = append([]Chip{{Key: KeyCountry, Label: label}}, chips...)
	}

	if len(chips) == 0 {
		return []Chip{{Label: filtersCopy.String("summaryAll", defaultSummaryAll)}}
	}
	clearLabel := filtersCopy.String("clearFilterLabel", defaultClearFilter)
	for i := range chips {
		chips[i].Clearable = true
		chips[i].AriaLabel = i18n.Interpolate(clearLabel, map[string]any{"label": chips[i].Label})
	}
	return chips
}
