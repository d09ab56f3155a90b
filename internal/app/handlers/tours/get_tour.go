package tours

import (
	"context"
	"errors"
	"strings"

	"travelgo/internal/app/dto"
	"travelgo/internal/app/queries"
	"travelgo/internal/domain/i18n"
	domaintours "travelgo/internal/domain/tours"
)

const getTourKey = "tours.get"

var ErrMissingTourID = errors.New("tours: tour id required")

// GetTourQuery loads one tour. When both Start and End are set the detail reports
// whether the tour is free for that period.
type GetTourQuery struct {
	ID    string
	Lang  string
	Start string
	End   string
}

func (q GetTourQuery) Key() string { return getTourKey }

func (q GetTourQuery) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return ErrMissingTourID
	}
	return nil
}

type GetTourHandler struct {
	Tours Provider
}

func (h *GetTourHandler) Handle(ctx context.Context, q GetTourQuery) (dto.TourDetail, error) {
	list, err := h.Tours.Get(ctx)
	if err != nil {
		return dto.TourDetail{}, err
	}
	tour, err := domaintours.FindByID(list, domaintours.TourID(strings.TrimSpace(q.ID)))
	if err != nil {
		return dto.TourDetail{}, err
	}
	detail := dto.MapTourDetail(tour, i18n.Normalize(q.Lang))
	if q.Start != "" && q.End != "" {
		available := domaintours.IsAvailable(tour, q.Start, q.End)
		detail.Available = &available
	}
	return detail, nil
}

var _ queries.Handler[GetTourQuery, dto.TourDetail] = (*GetTourHandler)(nil)
