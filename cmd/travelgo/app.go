package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"travelgo/internal/app/catalog"
	"travelgo/internal/app/commands"
	"travelgo/internal/app/dto"
	prefsapp "travelgo/internal/app/handlers/preferences"
	searchapp "travelgo/internal/app/handlers/search"
	toursapp "travelgo/internal/app/handlers/tours"
	"travelgo/internal/app/handlers/uicopy"
	"travelgo/internal/app/middleware"
	"travelgo/internal/app/outbox"
	"travelgo/internal/app/pages"
	"travelgo/internal/app/queries"
	"travelgo/internal/domain/datepicker"
	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/preferences"
	"travelgo/internal/domain/search"
	"travelgo/internal/domain/tours"
	"travelgo/internal/infra/broker/kafka"
	"travelgo/internal/infra/config"
	mongostore "travelgo/internal/infra/db/mongo"
	ginserver "travelgo/internal/infra/http/gin"
	"travelgo/internal/infra/obs"
	outboxinfra "travelgo/internal/infra/outbox"
	"travelgo/internal/infra/resources"
	"travelgo/internal/infra/storage/memory"
	"travelgo/internal/infra/storage/s3"
)

var errNotLoaded = errors.New("not loaded yet")

// dependencies are the adapters chosen by configuration.
type dependencies struct {
	toursLoader resources.Loader[[]tours.Tour]
	copyLoader  resources.Loader[*i18n.Copy]
	preferences preferences.Store
	outbox      outbox.Outbox
	worker      *outboxinfra.Worker
	metrics     *obs.Metrics
	clock       datepicker.Clock
	scheduler   catalog.Scheduler
	closers     []func(context.Context) error
}

func (d dependencies) close(ctx context.Context, logger *slog.Logger) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil {
			logger.Warn("dependency close failed", "error", err)
		}
	}
}

type application struct {
	handlers ginserver.Handlers
	health   obs.HealthHandlers
	tours    *resources.Memo[[]tours.Tour]
	copy     *resources.Memo[*i18n.Copy]
	pages    *memory.PageRepository
}

// warmUp starts both resource loads so the first page does not wait for them.
func (a application) warmUp(ctx context.Context, logger *slog.Logger) {
	if _, err := a.tours.Get(ctx); err != nil {
		logger.Warn("tour collection unavailable", "error", err)
	}
	if _, err := a.copy.Get(ctx); err != nil {
		logger.Warn("copy document unavailable", "error", err)
	}
}

// loadedCheck turns a memo's load status into a readiness check.
func loadedCheck(loaded func() (bool, error)) func() error {
	return func() error {
		done, err := loaded()
		if !done {
			return errNotLoaded
		}
		return err
	}
}

func buildApplication(cfg config.Config, logger *slog.Logger, deps dependencies) application {
	toursMemo := resources.NewMemo("tours", deps.toursLoader).Observe(deps.metrics.ResourceLoaded)
	copyMemo := resources.NewMemo("copy", deps.copyLoader).Observe(deps.metrics.ResourceLoaded)
	pageRepo := memory.NewPageRepository()
	prefsStore := deps.preferences
	if prefsStore == nil {
		prefsStore = memory.NewPreferencesStore()
	}
	box := deps.outbox
	if box == nil {
		box = outboxinfra.NewRelay(nil, outboxinfra.Envelope{}, logger)
	}
	encoder := outbox.JSONEventEncoder{}

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler[searchapp.SubmitSearchCommand, search.Detail](commandBus, &searchapp.SubmitSearchHandler{
		Outbox:  box,
		Encoder: encoder,
		Logger:  logger,
		Counter: deps.metrics,
	})
	commands.RegisterHandler[prefsapp.UpdatePreferencesCommand, dto.Preferences](commandBus, &prefsapp.UpdatePreferencesHandler{
		Store:   prefsStore,
		Outbox:  box,
		Encoder: encoder,
		Logger:  logger,
	})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler[toursapp.SearchCatalogQuery, dto.TourCatalog](queryBus, &toursapp.SearchCatalogHandler{Tours: toursMemo})
	queries.RegisterHandler[toursapp.GetTourQuery, dto.TourDetail](queryBus, &toursapp.GetTourHandler{Tours: toursMemo})
	queries.RegisterHandler[uicopy.GetBlockQuery, dto.CopyBlock](queryBus, &uicopy.GetBlockHandler{Copy: copyMemo})
	queries.RegisterHandler[prefsapp.GetPreferencesQuery, dto.Preferences](queryBus, &prefsapp.GetPreferencesHandler{Store: prefsStore})

	commandBusWithMiddleware := middleware.ChainCommands(
		commandBus,
		middleware.Logging(logger),
		middleware.Validation(middleware.MessageValidator{}),
		middleware.OutboxFlush(box, logger),
	)
	queryBusWithMiddleware := middleware.ChainQueries(
		queryBus,
		middleware.QueryLogging(logger),
		middleware.QueryValidation(middleware.MessageValidator{}),
	)

	var gauge pages.Gauge
	if deps.metrics != nil {
		gauge = deps.metrics
	}
	pageService := pages.NewService(pageRepo, toursMemo, copyMemo, commandBusWithMiddleware, pages.Options{
		PriceMax:    cfg.PriceMax,
		Debounce:    cfg.PriceDebounce,
		DefaultLang: cfg.DefaultLang,
		Clock:       deps.clock,
		Scheduler:   deps.scheduler,
		Logger:      logger,
		Gauge:       gauge,
	})

	handlers := ginserver.Handlers{
		Tours:       ginserver.TourHandler{Queries: queryBusWithMiddleware},
		Copy:        ginserver.CopyHandler{Queries: queryBusWithMiddleware},
		Search:      ginserver.SearchHandler{Commands: commandBusWithMiddleware},
		Pages:       ginserver.PageHandler{Pages: pageService},
		Picker:      ginserver.PickerHandler{Pages: pageService},
		Preferences: ginserver.PreferencesHandler{Commands: commandBusWithMiddleware, Queries: queryBusWithMiddleware},
	}
	if deps.metrics != nil {
		handlers.Metrics = deps.metrics.Handler()
	}

	return application{
		handlers: handlers,
		health: obs.HealthHandlers{Checks: []obs.Check{
			{Name: "tours", Run: loadedCheck(toursMemo.Loaded)},
			{Name: "copy", Run: loadedCheck(copyMemo.Loaded), Optional: true},
		}},
		tours: toursMemo,
		copy:  copyMemo,
		pages: pageRepo,
	}
}

// connectDependencies builds the adapters selected by configuration. Closers are
// registered as soon as each adapter is up so a later failure still releases them.
func connectDependencies(cfg config.Config, logger *slog.Logger) (dependencies, error) {
	deps := dependencies{metrics: obs.NewMetrics("travelgo")}

	var mongoClient *mongostore.Client
	if cfg.MongoURI != "" {
		client, err := mongostore.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return deps, fmt.Errorf("connect mongo: %w", err)
		}
		mongoClient = client
		deps.closers = append(deps.closers, client.Close)
		deps.preferences = mongostore.NewPreferencesStore(client.DB)
	}

	toursFetcher, copyFetcher, err := resourceFetchers(cfg, logger)
	if err != nil {
		return deps, err
	}
	deps.copyLoader = resources.CopyLoader(copyFetcher)
	if cfg.ResourceSource == config.SourceMongo {
		deps.toursLoader = mongostore.NewTourSource(mongoClient.DB).LoadTours
	} else {
		deps.toursLoader = resources.ToursLoader(toursFetcher)
	}

	envelope := outboxinfra.Envelope{TopicPrefix: cfg.KafkaTopicPrefix}
	if len(cfg.KafkaBrokers) == 0 {
		deps.outbox = outboxinfra.NewRelay(nil, envelope, logger)
		return deps, nil
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers, sarama.NewConfig())
	if err != nil {
		return deps, fmt.Errorf("connect kafka: %w", err)
	}
	deps.closers = append(deps.closers, func(context.Context) error { return producer.Close() })
	if mongoClient != nil {
		store := outboxinfra.NewStore(mongoClient.DB)
		deps.outbox = store
		deps.worker = &outboxinfra.Worker{
			Store:    store,
			Producer: producer,
			Envelope: envelope,
			Interval: cfg.OutboxPollInterval,
			Backoff:  cfg.RetryBackoff,
		}
		return deps, nil
	}
	deps.outbox = outboxinfra.NewRelay(producer, envelope, logger)
	return deps, nil
}

func resourceFetchers(cfg config.Config, logger *slog.Logger) (resources.Fetcher, resources.Fetcher, error) {
	switch cfg.ResourceSource {
	case config.SourceHTTP:
		return resources.HTTPFetcher{URL: cfg.ToursURL, Timeout: cfg.FetchTimeout},
			resources.HTTPFetcher{URL: cfg.CopyURL, Timeout: cfg.FetchTimeout}, nil
	case config.SourceS3:
		client, err := newS3Client(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return client.Object(cfg.ToursKey), client.Object(cfg.CopyKey), nil
	default:
		return resources.FileFetcher{Path: cfg.ToursPath}, resources.FileFetcher{Path: cfg.CopyPath}, nil
	}
}

func newS3Client(cfg config.Config, logger *slog.Logger) (*s3.Client, error) {
	client, err := s3.NewClient(cfg.S3Endpoint, cfg.S3UseSSL, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, "", logger)
	if err != nil {
		return nil, fmt.Errorf("connect s3: %w", err)
	}
	return client, nil
}
