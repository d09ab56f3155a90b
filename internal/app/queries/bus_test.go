package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockQuery struct{ Region string }

func (blockQuery) Key() string { return "copy.block" }

type tourQuery struct{ ID string }

func (tourQuery) Key() string { return "tours.get" }

func TestAskRoutesByKey(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler[blockQuery, string](bus, HandlerFunc[blockQuery, string](
		func(_ context.Context, q blockQuery) (string, error) { return "region " + q.Region, nil }))

	res, err := Ask[blockQuery, string](context.Background(), bus, blockQuery{Region: "catalog"})
	require.NoError(t, err)
	assert.Equal(t, "region catalog", res)

	_, err = Ask[tourQuery, string](context.Background(), bus, tourQuery{ID: "x"})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
	assert.Contains(t, err.Error(), "tours.get")

	_, err = Ask[blockQuery, []string](context.Background(), bus, blockQuery{})
	assert.ErrorIs(t, err, ErrResultType)
}

func TestNilResultIsZeroValue(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler[tourQuery, *string](bus, HandlerFunc[tourQuery, *string](
		func(context.Context, tourQuery) (*string, error) { return nil, nil }))

	res, err := Ask[tourQuery, *string](context.Background(), bus, tourQuery{})
	require.NoError(t, err)
	assert.Nil(t, res)
}
