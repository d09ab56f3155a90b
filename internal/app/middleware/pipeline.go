package middleware

import (
	"context"

	"travelgo/internal/app/commands"
	"travelgo/internal/app/queries"
)

// CommandMiddleware decorates the command bus that page views and the search
// endpoint dispatch to.
type CommandMiddleware func(next commands.Bus) commands.Bus

// QueryMiddleware decorates the read-side bus behind the catalog, tour, copy
// and preferences endpoints.
type QueryMiddleware func(next queries.Bus) queries.Bus

// ChainCommands applies mws so that the first one sees a command first.
func ChainCommands(base commands.Bus, mws ...CommandMiddleware) commands.Bus {
	return chain(base, mws)
}

func ChainQueries(base queries.Bus, mws ...QueryMiddleware) queries.Bus {
	return chain(base, mws)
}

func chain[B any, M ~func(B) B](base B, mws []M) B {
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

type commandFunc func(ctx context.Context, cmd commands.Command) (any, error)

func (f commandFunc) Dispatch(ctx context.Context, cmd commands.Command) (any, error) {
	return f(ctx, cmd)
}

type queryFunc func(ctx context.Context, query queries.Query) (any, error)

func (f queryFunc) Ask(ctx context.Context, q queries.Query) (any, error) {
	return f(ctx, q)
}
