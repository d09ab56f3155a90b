package pages

import (
	"travelgo/internal/app/catalog"
	"travelgo/internal/domain/datepicker"
	"travelgo/internal/domain/search"
)

// View is the full rendered state of a page.
type View struct {
	ID      string       `json:"id"`
	Lang    string       `json:"lang"`
	Catalog catalog.View `json:"catalog"`
	Picker  PickerView   `json:"picker"`
	Search  SearchView   `json:"search"`
	// RestoreFocus names the element to focus after the picker closed.
	RestoreFocus string `json:"restoreFocus,omitempty"`
}

type PickerView struct {
	datepicker.Snapshot
	Months   []datepicker.Month `json:"months,omitempty"`
	Triggers map[string]string  `json:"triggers"`
}

type SearchView struct {
	Values     search.Values  `json:"values"`
	LastSearch *search.Detail `json:"lastSearch,omitempty"`
	Status     string         `json:"status,omitempty"`
}

const periodPlaceholder = "—"

func render(p *Page) View {
	lang := p.Lang()
	snap := p.Picker.Snapshot()
	picker := PickerView{
		Snapshot: snap,
		Triggers: map[string]string{
			FiltersForm: datepicker.TriggerLabel(p.Catalog.Period(), lang, periodPlaceholder),
			SearchForm:  datepicker.TriggerLabel(p.Search.Period(), lang, periodPlaceholder),
		},
	}
	if snap.State.IsOpen() {
		picker.Months = p.Picker.Months(lang)
	}
	return View{
		ID:      p.ID,
		Lang:    lang,
		Catalog: p.Catalog.View(),
		Picker:  picker,
		Search: SearchView{
			Values:     p.Search.Values(),
			LastSearch: p.LastSearch(),
			Status:     p.SearchStatus(),
		},
	}
}
