package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelgo/internal/app/commands"
	"travelgo/internal/app/outbox"
	"travelgo/internal/app/queries"
)

var errBlankName = errors.New("name required")

type greetCommand struct{ Name string }

func (greetCommand) Key() string { return "test.greet" }

func (c greetCommand) Validate() error {
	if c.Name == "" {
		return errBlankName
	}
	return nil
}

type echoQuery struct{ Value string }

func (echoQuery) Key() string { return "test.echo" }

type countingOutbox struct {
	flushes  int
	flushErr error
	ctxErr   error
}

func (o *countingOutbox) Add(context.Context, outbox.EventRecord) error { return nil }

func (o *countingOutbox) Flush(ctx context.Context) error {
	o.flushes++
	o.ctxErr = ctx.Err()
	return o.flushErr
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGreetBus() *commands.InMemoryBus {
	bus := commands.NewInMemoryBus()
	commands.RegisterHandler[greetCommand, string](bus, commands.HandlerFunc[greetCommand, string](
		func(_ context.Context, cmd greetCommand) (string, error) {
			return "hello " + cmd.Name, nil
		}))
	return bus
}

func TestCommandPipeline(t *testing.T) {
	box := &countingOutbox{}
	bus := ChainCommands(newGreetBus(), Logging(quietLogger()), Validation(MessageValidator{}), OutboxFlush(box, quietLogger()))

	res, err := commands.Dispatch[greetCommand, string](context.Background(), bus, greetCommand{Name: "Kyiv"})
	require.NoError(t, err)
	assert.Equal(t, "hello Kyiv", res)
	assert.Equal(t, 1, box.flushes)

	_, err = commands.Dispatch[greetCommand, string](context.Background(), bus, greetCommand{})
	assert.ErrorIs(t, err, errBlankName)
	assert.Equal(t, 1, box.flushes)
}

func TestQueryPipeline(t *testing.T) {
	base := queries.NewInMemoryBus()
	queries.RegisterHandler[echoQuery, string](base, queries.HandlerFunc[echoQuery, string](
		func(_ context.Context, q echoQuery) (string, error) { return q.Value, nil }))
	bus := ChainQueries(base, QueryLogging(quietLogger()), QueryValidation(MessageValidator{}))

	res, err := queries.Ask[echoQuery, string](context.Background(), bus, echoQuery{Value: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "ok", res)

	_, err = bus.Ask(context.Background(), greetCommand{Name: "x"})
	assert.ErrorIs(t, err, queries.ErrHandlerNotFound)
}

func TestOutboxFlushFailureKeepsCommandResult(t *testing.T) {
	box := &countingOutbox{flushErr: errors.New("kafka down")}
	bus := ChainCommands(newGreetBus(), OutboxFlush(box, quietLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := commands.Dispatch[greetCommand, string](ctx, bus, greetCommand{Name: "Lviv"})
	require.NoError(t, err)
	assert.Equal(t, "hello Lviv", res)
	assert.Equal(t, 1, box.flushes)
	assert.NoError(t, box.ctxErr)
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) CommandMiddleware {
		return func(next commands.Bus) commands.Bus {
			return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
				order = append(order, name)
				return next.Dispatch(ctx, cmd)
			})
		}
	}
	bus := ChainCommands(newGreetBus(), mark("outer"), mark("inner"))
	_, err := bus.Dispatch(context.Background(), greetCommand{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, order)
}
