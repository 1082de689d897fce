package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/logging"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// serve runs the HTTP server until ctx is cancelled, then drains it.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logging.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
