package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/xvierd/turskmind/internal/adapters/notification"
	"github.com/xvierd/turskmind/internal/adapters/storage"
	"github.com/xvierd/turskmind/internal/clock"
	"github.com/xvierd/turskmind/internal/config"
	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/logging"
	"github.com/xvierd/turskmind/internal/ports"
	"github.com/xvierd/turskmind/internal/services"
	"go.uber.org/zap"
)

var (
	// appClock drives every countdown. Tests replace it.
	appClock clock.Clock = clock.System{}

	// Global dependencies
	appConfig      *config.Config
	logger         *zap.Logger
	storageAdapter ports.Storage
	notifier       *notification.Notifier
	practiceSvc    *services.PracticeService
	affirmationSvc *services.AffirmationService
	progressSvc    *services.ProgressService
	stateService   *services.StateService
)

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	var err error
	appConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = logging.New(appConfig.Log, verbose)
	if err != nil {
		return err
	}

	// Initialize storage; it lives only as long as the process.
	storageAdapter, err = storage.NewMemory()
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	notifier = notification.New(&appConfig.Notifications)

	// Initialize services
	practiceSvc = services.NewPracticeService(storageAdapter, logger.Named("practice"))
	practiceSvc.SetClock(appClock)
	practiceSvc.SetNotifier(notifier)
	practiceSvc.SetTickInterval(appConfig.TickInterval)

	affirmationSvc = services.NewAffirmationService(nil, logger.Named("affirmation"))
	progressSvc = services.NewProgressService(storageAdapter)
	stateService = services.NewStateService(practiceSvc, affirmationSvc, progressSvc)

	logger.Debug("services initialized",
		zap.Duration("tick_interval", appConfig.TickInterval),
		zap.Bool("notifications", notifier.IsEnabled()))

	return nil
}

// cleanupServices stops any running countdown and closes all resources.
func cleanupServices() error {
	if practiceSvc != nil {
		if _, err := practiceSvc.CancelPractice(context.Background()); err != nil && !errors.Is(err, domain.ErrNoActiveSession) {
			return fmt.Errorf("failed to stop practice: %w", err)
		}
	}
	if logger != nil {
		_ = logger.Sync()
	}
	if storageAdapter != nil {
		return storageAdapter.Close()
	}
	return nil
}
