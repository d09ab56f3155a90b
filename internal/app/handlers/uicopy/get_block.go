package uicopy

import (
	"context"
	"errors"
	"strings"

	"travelgo/internal/app/dto"
	"travelgo/internal/app/queries"
	"travelgo/internal/domain/i18n"
)

const getBlockKey = "copy.block"

var (
	ErrMissingRegion = errors.New("copy: region required")
	ErrBlockNotFound = errors.New("copy: block not found")
)

// Provider returns the loaded copy document.
type Provider interface {
	Get(ctx context.Context) (*i18n.Copy, error)
}

type GetBlockQuery struct {
	Region string
	Lang   string
}

func (q GetBlockQuery) Key() string { return getBlockKey }

func (q GetBlockQuery) Validate() error {
	if strings.TrimSpace(q.Region) == "" {
		return ErrMissingRegion
	}
	return nil
}

type GetBlockHandler struct {
	Copy Provider
}

func (h *GetBlockHandler) Handle(ctx context.Context, q GetBlockQuery) (dto.CopyBlock, error) {
	doc, err := h.Copy.Get(ctx)
	if err != nil {
		return dto.CopyBlock{}, err
	}
	lang := i18n.Normalize(q.Lang)
	block := doc.Block(q.Region, lang)
	if block == nil {
		return dto.CopyBlock{}, ErrBlockNotFound
	}
	return dto.CopyBlock{Region: q.Region, Lang: lang, Values: block}, nil
}

var _ queries.Handler[GetBlockQuery, dto.CopyBlock] = (*GetBlockHandler)(nil)
