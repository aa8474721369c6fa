package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fastprodman/assetledger/internal/api"
	"github.com/fastprodman/assetledger/internal/infra/logging"
	"github.com/fastprodman/assetledger/internal/infra/pgutils"
	pgreftypes "github.com/fastprodman/assetledger/internal/repos/reftypes/postgres"
	"github.com/fastprodman/assetledger/internal/services/balance"
	"github.com/fastprodman/assetledger/internal/services/refdata"
	"github.com/fastprodman/assetledger/pkg/envconf"
	"github.com/fastprodman/assetledger/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(apiConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	sq := shutdownqueue.New()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := sq.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Infra ---
	dbConns, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	sq.Add("db", func(context.Context) error {
		slog.Info("Close db pool")
		return dbConns.Close()
	})

	// Reference data is read once; the server never starts without it.
	ref, err := refdata.Load(ctx, pgreftypes.New(dbConns))
	if err != nil {
		return fmt.Errorf("load reference data: %w", err)
	}

	balanceSrv := balance.New(dbConns, ref, cfg.Ledger)

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, balanceSrv, cfg.Ledger.SessionLocation)

	sq.Add("http", func(c context.Context) error {
		slog.Info("Shut down server")

		err := srv.Shutdown(c)
		if err != nil {
			return fmt.Errorf("shutdown srv: %w", err)
		}

		return nil
	})

	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("API started", "port", cfg.Port)

	select {
	case <-ctx.Done():
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
