package tours

import (
	"context"

	"travelgo/internal/app/dto"
	"travelgo/internal/app/queries"
	"travelgo/internal/domain/i18n"
	domaintours "travelgo/internal/domain/tours"
)

const searchCatalogKey = "tours.catalog"

// Provider returns the loaded tour collection; resources.Memo satisfies it.
type Provider interface {
	Get(ctx context.Context) ([]domaintours.Tour, error)
}

// SearchCatalogQuery filters the whole collection with a one-off filter state.
type SearchCatalogQuery struct {
	Lang    string
	Filters domaintours.FilterState
}

func (q SearchCatalogQuery) Key() string { return searchCatalogKey }

type SearchCatalogHandler struct {
	Tours Provider
}

func (h *SearchCatalogHandler) Handle(ctx context.Context, q SearchCatalogQuery) (dto.TourCatalog, error) {
	list, err := h.Tours.Get(ctx)
	if err != nil {
		return dto.TourCatalog{}, err
	}
	filtered := domaintours.ApplyFilters(list, q.Filters)
	return dto.MapCatalog(list, filtered, q.Filters, i18n.Normalize(q.Lang)), nil
}

var _ queries.Handler[SearchCatalogQuery, dto.TourCatalog] = (*SearchCatalogHandler)(nil)
