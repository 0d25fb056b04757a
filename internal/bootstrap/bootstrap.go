package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/GregMSThompson/fraud-simulator/internal/config"
	"github.com/GregMSThompson/fraud-simulator/pkg/logger"
)

type Bootstrap struct {
	Log *slog.Logger

	shutdown []func(context.Context) error
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)

	shutdownTracing, err := InitTracing(applicationCtx, cfg.OTelEndpoint, cfg.ServiceName)
	if err != nil {
		return bs, err
	}
	bs.shutdown = append(bs.shutdown, shutdownTracing)

	return bs, nil
}

// Close flushes and releases everything Run set up.
func (bs *Bootstrap) Close(ctx context.Context) error {
	var errList []error
	for i := len(bs.shutdown) - 1; i >= 0; i-- {
		if err := bs.shutdown[i](ctx); err != nil {
			errList = append(errList, err)
		}
	}
	bs.shutdown = nil
	return errors.Join(errList...)
}
