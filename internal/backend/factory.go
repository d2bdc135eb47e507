package backend

import (
	"context"
	"errors"
	"fmt"

	"foodlog/internal/amqp"
	applog "foodlog/internal/log"
	"foodlog/internal/services"
	"foodlog/internal/storage"
	"foodlog/internal/store"
	"foodlog/internal/store/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		st      store.FoodLogStore
		closers []func() error
	)

	switch config.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
		}
		st = repo
		closers = append(closers, repo.Close)
		f.logger.Info("Initialized in-memory SQLite backend", "database", repo.Name())
	case MemoryBackend:
		st = memory.New()
		f.logger.Info("Initialized memory backend")
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}

	result := &BackendResult{Store: st}

	// The event feed is optional; a broker outage never blocks the log.
	if config.AMQPURL != "" {
		client, err := amqp.NewClient(ctx, config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			result.Publisher = client
			closers = append(closers, client.Close)
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
		}
	}

	result.Cleanup = func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	return result, nil
}

// NewService builds the food log service over a backend.
func NewService(result *BackendResult, config Config, logger *applog.Logger) *services.FoodLogService {
	opts := []services.Option{}
	if logger != nil {
		opts = append(opts, services.WithLogger(logger.WithComponent(applog.ComponentFoodLog)))
	}
	if result.Publisher != nil {
		opts = append(opts, services.WithPublisher(result.Publisher, config.PublishTimeout))
	}
	return services.NewFoodLogService(result.Store, opts...)
}
